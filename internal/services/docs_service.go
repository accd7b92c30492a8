package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"jobboard/internal/repositories"
	"jobboard/internal/utils"
)

// DocsService renders a printable PDF summary for one application.
type DocsService struct {
	AppRepo   repositories.ApplicationRepository
	JobRepo   repositories.JobRepository
	UserRepo  repositories.UserRepository
	RequestID string
	Loader    func(int64) (applicationDocData, error)
}

type applicationDocData struct {
	ApplicationID int64
	JobTitle      string
	Company       string
	Location      string
	ApplicantName string
	ApplicantMail string
	Status        string
	CoverLetter   string
	AppliedAt     time.Time
	UpdatedAt     time.Time
}

func (s DocsService) GenerateSummary(applicationID int64) ([]byte, string, error) {
	data, err := s.loadDocData(applicationID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_summary", fmt.Sprintf("application_id=%d", applicationID))
	return buildSummaryPDF(data)
}

func (s DocsService) loadDocData(applicationID int64) (applicationDocData, error) {
	if s.Loader != nil {
		return s.Loader(applicationID)
	}

	var out applicationDocData
	app, err := s.AppRepo.GetByID(applicationID)
	if err != nil {
		return out, err
	}
	out.ApplicationID = app.ID
	out.Status = string(app.Status)
	out.CoverLetter = app.CoverLetter
	out.AppliedAt = app.CreatedAt
	out.UpdatedAt = app.UpdatedAt

	if job, err := s.JobRepo.GetByID(app.JobID); err == nil {
		out.JobTitle = job.Title
		out.Company = job.Company
		out.Location = job.Location
	}
	if user, err := s.UserRepo.GetByID(app.ApplicantID); err == nil {
		out.ApplicantName = user.Name
		out.ApplicantMail = user.Email
	}
	return out, nil
}

func buildSummaryPDF(data applicationDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Application Summary")
	pdf.Ln(14)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	row("Application ID", fmt.Sprintf("#%d", data.ApplicationID))
	row("Position", data.JobTitle)
	row("Company", data.Company)
	row("Location", data.Location)
	row("Applicant", data.ApplicantName)
	row("Email", data.ApplicantMail)
	row("Status", strings.ToUpper(data.Status))
	row("Applied", data.AppliedAt.Format("2006-01-02 15:04"))
	row("Last update", data.UpdatedAt.Format("2006-01-02 15:04"))

	if strings.TrimSpace(data.CoverLetter) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 7, "Cover letter", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, data.CoverLetter, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("application-%d-summary.pdf", data.ApplicationID)
	return buf.Bytes(), filename, nil
}
