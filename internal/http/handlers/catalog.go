package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard/internal/repositories"
)

type namePayload struct {
	Name string `json:"name" binding:"required"`
}

// MountNamedResource wires the uniform CRUD surface for a catalog entity
// (categories, tags, skills, job categories). Reads are public; mutations go
// through guard. The per-entity differences live entirely in the repository
// descriptor.
func MountNamedResource[T any](g *gin.RouterGroup, repo repositories.EntityRepository[T], guard gin.HandlerFunc) {
	g.GET("", func(c *gin.Context) {
		page := pageFromRequest(c, repo.Desc.Sortable, repo.Desc.DefaultSort)
		items, total, err := repo.List(page)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		respondPage(c, items, total)
	})

	g.GET("/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		item, err := repo.GetByID(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	})

	g.POST("", guard, func(c *gin.Context) {
		var payload namePayload
		if !BindJSONOrError(c, &payload) {
			return
		}
		name := strings.TrimSpace(payload.Name)
		if name == "" {
			RespondError(c, http.StatusBadRequest, "name is required", nil)
			return
		}
		item, err := repo.Create(map[string]any{"name": name})
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	})

	g.PUT("/:id", guard, func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var payload namePayload
		if !BindJSONOrError(c, &payload) {
			return
		}
		name := strings.TrimSpace(payload.Name)
		if name == "" {
			RespondError(c, http.StatusBadRequest, "name is required", nil)
			return
		}
		item, err := repo.Update(id, map[string]any{"name": name})
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	})

	g.DELETE("/:id", guard, func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		deleted, err := repo.SoftDelete(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	})
}
