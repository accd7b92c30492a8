package repositories

import (
	"database/sql"

	"jobboard/internal/domain/models"
)

func NewBlogRepository(db *sql.DB) EntityRepository[models.Blog] {
	return EntityRepository[models.Blog]{DB: db, Desc: EntityDescriptor[models.Blog]{
		Resource: "blog",
		Table:    "blogs",
		Columns: []string{
			"id", "title", "content", "author_id",
			"COALESCE(category_id, 0)", "created_at", "updated_at",
		},
		ScanRow: func(scan func(dest ...any) error) (models.Blog, error) {
			var b models.Blog
			err := scan(&b.ID, &b.Title, &b.Content, &b.AuthorID, &b.CategoryID, &b.CreatedAt, &b.UpdatedAt)
			return b, err
		},
		Mutable: map[string]bool{
			"title":       true,
			"content":     true,
			"author_id":   true,
			"category_id": true,
		},
		Sortable:    map[string]bool{"id": true, "title": true, "created_at": true},
		DefaultSort: "created_at",
	}}
}
