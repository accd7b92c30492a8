package repositories

import (
	"database/sql"

	"jobboard/internal/domain/models"
)

// The four catalog resources used to each carry their own copy of the CRUD
// plumbing; they now differ only in their descriptors.

var catalogSortable = map[string]bool{"id": true, "name": true, "created_at": true}

func NewCategoryRepository(db *sql.DB) EntityRepository[models.Category] {
	return EntityRepository[models.Category]{DB: db, Desc: EntityDescriptor[models.Category]{
		Resource: "category",
		Table:    "categories",
		Columns:  []string{"id", "name", "created_at", "updated_at"},
		ScanRow: func(scan func(dest ...any) error) (models.Category, error) {
			var c models.Category
			err := scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
			return c, err
		},
		Mutable:     map[string]bool{"name": true},
		Sortable:    catalogSortable,
		DefaultSort: "created_at",
	}}
}

func NewTagRepository(db *sql.DB) EntityRepository[models.Tag] {
	return EntityRepository[models.Tag]{DB: db, Desc: EntityDescriptor[models.Tag]{
		Resource: "tag",
		Table:    "tags",
		Columns:  []string{"id", "name", "created_at", "updated_at"},
		ScanRow: func(scan func(dest ...any) error) (models.Tag, error) {
			var t models.Tag
			err := scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
			return t, err
		},
		Mutable:     map[string]bool{"name": true},
		Sortable:    catalogSortable,
		DefaultSort: "created_at",
	}}
}

func NewSkillRepository(db *sql.DB) EntityRepository[models.Skill] {
	return EntityRepository[models.Skill]{DB: db, Desc: EntityDescriptor[models.Skill]{
		Resource: "skill",
		Table:    "skills",
		Columns:  []string{"id", "name", "created_at", "updated_at"},
		ScanRow: func(scan func(dest ...any) error) (models.Skill, error) {
			var s models.Skill
			err := scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
			return s, err
		},
		Mutable:     map[string]bool{"name": true},
		Sortable:    catalogSortable,
		DefaultSort: "created_at",
	}}
}

func NewJobCategoryRepository(db *sql.DB) EntityRepository[models.JobCategory] {
	return EntityRepository[models.JobCategory]{DB: db, Desc: EntityDescriptor[models.JobCategory]{
		Resource: "job category",
		Table:    "job_categories",
		Columns:  []string{"id", "name", "created_at", "updated_at"},
		ScanRow: func(scan func(dest ...any) error) (models.JobCategory, error) {
			var jc models.JobCategory
			err := scan(&jc.ID, &jc.Name, &jc.CreatedAt, &jc.UpdatedAt)
			return jc, err
		},
		Mutable:     map[string]bool{"name": true},
		Sortable:    catalogSortable,
		DefaultSort: "created_at",
	}}
}
