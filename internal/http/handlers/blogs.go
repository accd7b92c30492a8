package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard/internal/http/middleware"
	"jobboard/internal/repositories"
)

type blogPayload struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	CategoryID int64  `json:"category_id"`
}

func (p blogPayload) fields(authorID int64) map[string]any {
	var categoryID any
	if p.CategoryID > 0 {
		categoryID = p.CategoryID
	}
	fields := map[string]any{
		"title":       strings.TrimSpace(p.Title),
		"content":     p.Content,
		"category_id": categoryID,
	}
	if authorID > 0 {
		fields["author_id"] = authorID
	}
	return fields
}

// GET /api/blogs
func ListBlogs(c *gin.Context) {
	repo := repositories.NewBlogRepository(nil)
	page := pageFromRequest(c, repo.Desc.Sortable, repo.Desc.DefaultSort)
	items, total, err := repo.List(page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, items, total)
}

// GET /api/blogs/:id
func GetBlog(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	blog, err := repositories.NewBlogRepository(nil).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// POST /api/blogs
func CreateBlog(c *gin.Context) {
	var payload blogPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	blog, err := repositories.NewBlogRepository(nil).Create(payload.fields(middleware.UserID(c)))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// PUT /api/blogs/:id
func UpdateBlog(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload blogPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	// authorship does not change on edit
	blog, err := repositories.NewBlogRepository(nil).Update(id, payload.fields(0))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// DELETE /api/blogs/:id
func DeleteBlog(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := repositories.NewBlogRepository(nil).SoftDelete(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
