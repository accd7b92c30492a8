package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard/internal/db"
	"jobboard/internal/http/middleware"
	"jobboard/internal/repositories"
	"jobboard/internal/services"
)

type jobPayload struct {
	Title         string `json:"title" binding:"required"`
	Company       string `json:"company" binding:"required"`
	Location      string `json:"location"`
	Description   string `json:"description"`
	JobCategoryID int64  `json:"job_category_id"`
	SalaryMin     *int64 `json:"salary_min"`
	SalaryMax     *int64 `json:"salary_max"`
}

func (p jobPayload) fields() map[string]any {
	var categoryID any
	if p.JobCategoryID > 0 {
		categoryID = p.JobCategoryID
	}
	return map[string]any{
		"title":           strings.TrimSpace(p.Title),
		"company":         strings.TrimSpace(p.Company),
		"location":        db.NullIfEmpty(strings.TrimSpace(p.Location)),
		"description":     p.Description,
		"job_category_id": categoryID,
		"salary_min":      p.SalaryMin,
		"salary_max":      p.SalaryMax,
	}
}

// GET /api/jobs?q=go&category=3&page=1&limit=20&sort=created_at&order=desc
func ListJobs(c *gin.Context) {
	repo := repositories.NewJobRepository(nil)
	page := pageFromRequest(c, repo.Desc.Sortable, repo.Desc.DefaultSort)

	q := strings.TrimSpace(c.Query("q"))
	categoryID, _ := strconv.ParseInt(strings.TrimSpace(c.Query("category")), 10, 64)

	items, total, err := repo.Search(q, categoryID, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, items, total)
}

// GET /api/jobs/:id
func GetJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	job, err := repositories.NewJobRepository(nil).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// POST /api/jobs
func CreateJob(c *gin.Context) {
	var payload jobPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	job, err := repositories.NewJobRepository(nil).Create(payload.fields())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// PUT /api/jobs/:id
func UpdateJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload jobPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	job, err := repositories.NewJobRepository(nil).Update(id, payload.fields())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DELETE /api/jobs/:id
func DeleteJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := repositories.NewJobRepository(nil).SoftDelete(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

type applyPayload struct {
	CoverLetter string `json:"cover_letter"`
}

// POST /api/jobs/:id/apply
func ApplyToJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload applyPayload
	if c.Request.ContentLength > 0 && !BindJSONOrError(c, &payload) {
		return
	}

	svc := services.ApplicationService{
		Repo:      repositories.NewApplicationRepository(nil),
		JobRepo:   repositories.NewJobRepository(nil),
		RequestID: middleware.GetRequestID(c),
	}
	app, err := svc.Apply(id, middleware.UserID(c), payload.CoverLetter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// GET /api/jobs/:id/applications
func ListJobApplications(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	repo := repositories.NewApplicationRepository(nil)
	page := pageFromRequest(c, repo.Desc.Sortable, repo.Desc.DefaultSort)
	items, total, err := repo.ListByJob(id, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, items, total)
}
