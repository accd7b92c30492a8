package services

import (
	"strings"
	"testing"
	"time"
)

func TestDocsServiceGenerateSummary(t *testing.T) {
	loader := func(id int64) (applicationDocData, error) {
		return applicationDocData{
			ApplicationID: id,
			JobTitle:      "Backend Engineer",
			Company:       "Acme",
			Location:      "Remote",
			ApplicantName: "Tester",
			ApplicantMail: "tester@example.com",
			Status:        "reviewed",
			CoverLetter:   "I would like to apply.",
			AppliedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateSummary(7)
	if err != nil {
		t.Fatalf("GenerateSummary returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateSummary returned empty data")
	}
	if !strings.Contains(filename, "application-7") {
		t.Fatalf("unexpected filename %q", filename)
	}
}
