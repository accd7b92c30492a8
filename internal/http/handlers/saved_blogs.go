package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/domain"
	"jobboard/internal/http/middleware"
	"jobboard/internal/repositories"
)

var savedBlogSortable = map[string]bool{"id": true, "created_at": true}

// POST /api/blogs/:id/save
// Safe to call repeatedly: the same relation comes back every time.
func SaveBlog(c *gin.Context) {
	blogID, ok := idParam(c)
	if !ok {
		return
	}

	// saving a hidden or missing blog is a 404, not a dangling relation
	if _, err := repositories.NewBlogRepository(nil).GetByID(blogID); err != nil {
		RespondDomainError(c, err)
		return
	}

	sb, err := repositories.NewSavedBlogRepository(nil).Save(middleware.UserID(c), blogID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sb)
}

// DELETE /api/blogs/:id/save
func UnsaveBlog(c *gin.Context) {
	blogID, ok := idParam(c)
	if !ok {
		return
	}
	removed, err := repositories.NewSavedBlogRepository(nil).RemoveByTarget(middleware.UserID(c), blogID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// GET /api/blogs/:id/saved
func SavedBlogExists(c *gin.Context) {
	blogID, ok := idParam(c)
	if !ok {
		return
	}
	exists, err := repositories.NewSavedBlogRepository(nil).Exists(middleware.UserID(c), blogID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": exists})
}

// GET /api/saved-blogs
func ListSavedBlogs(c *gin.Context) {
	page := pageFromRequest(c, savedBlogSortable, "created_at")
	// newest saves first unless the caller asked otherwise
	if c.Query("order") == "" {
		page.SortOrder = domain.SortDesc
	}
	items, total, err := repositories.NewSavedBlogRepository(nil).List(middleware.UserID(c), page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, items, total)
}
