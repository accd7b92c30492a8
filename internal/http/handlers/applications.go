package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard/internal/domain"
	"jobboard/internal/http/middleware"
	"jobboard/internal/repositories"
	"jobboard/internal/services"
)

func applicationService(c *gin.Context) services.ApplicationService {
	return services.ApplicationService{
		Repo:      repositories.NewApplicationRepository(nil),
		JobRepo:   repositories.NewJobRepository(nil),
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/applications — the caller's own applications.
func ListMyApplications(c *gin.Context) {
	repo := repositories.NewApplicationRepository(nil)
	page := pageFromRequest(c, repo.Desc.Sortable, repo.Desc.DefaultSort)
	items, total, err := repo.ListByApplicant(middleware.UserID(c), page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, items, total)
}

// GET /api/applications/:id — owner or admin only; anyone else sees a 404.
func GetApplication(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	app, err := repositories.NewApplicationRepository(nil).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if app.ApplicantID != middleware.UserID(c) && middleware.UserRole(c) != "admin" {
		RespondDomainError(c, domain.NotFoundError{Resource: "application"})
		return
	}
	c.JSON(http.StatusOK, app)
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/applications/:id/status
func UpdateApplicationStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload statusPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	target, err := domain.ParseApplicationStatus(strings.TrimSpace(strings.ToLower(payload.Status)))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	app, err := applicationService(c).Transition(id, target)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// DELETE /api/applications/:id — the applicant withdraws (soft delete).
func DeleteApplication(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := applicationService(c).Withdraw(id, middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// GET /api/applications/:id/summary
func GetApplicationSummary(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	app, err := repositories.NewApplicationRepository(nil).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if app.ApplicantID != middleware.UserID(c) && middleware.UserRole(c) != "admin" {
		RespondDomainError(c, domain.NotFoundError{Resource: "application"})
		return
	}

	svc := services.DocsService{
		AppRepo:   repositories.NewApplicationRepository(nil),
		JobRepo:   repositories.NewJobRepository(nil),
		UserRepo:  repositories.NewUserRepository(nil),
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateSummary(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
