package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/http/middleware"
	"jobboard/internal/repositories"
)

// GET /api/users/me
func Me(c *gin.Context) {
	user, err := repositories.NewUserRepository(nil).GetByID(middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToPublic()})
}
