package repositories

import (
	"database/sql"

	"jobboard/internal/domain"
	"jobboard/internal/domain/models"
)

// JobRepository adds keyword search on top of the generic contract.
type JobRepository struct {
	EntityRepository[models.Job]
}

func NewJobRepository(db *sql.DB) JobRepository {
	return JobRepository{EntityRepository[models.Job]{DB: db, Desc: EntityDescriptor[models.Job]{
		Resource: "job",
		Table:    "jobs",
		Columns: []string{
			"id", "title", "company", "COALESCE(location, '')", "description",
			"COALESCE(job_category_id, 0)", "salary_min", "salary_max",
			"created_at", "updated_at",
		},
		ScanRow: func(scan func(dest ...any) error) (models.Job, error) {
			var j models.Job
			var salaryMin, salaryMax sql.NullInt64
			err := scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description,
				&j.JobCategoryID, &salaryMin, &salaryMax, &j.CreatedAt, &j.UpdatedAt)
			if salaryMin.Valid {
				v := salaryMin.Int64
				j.SalaryMin = &v
			}
			if salaryMax.Valid {
				v := salaryMax.Int64
				j.SalaryMax = &v
			}
			return j, err
		},
		Mutable: map[string]bool{
			"title":           true,
			"company":         true,
			"location":        true,
			"description":     true,
			"job_category_id": true,
			"salary_min":      true,
			"salary_max":      true,
		},
		Sortable:    map[string]bool{"id": true, "title": true, "company": true, "created_at": true},
		DefaultSort: "created_at",
	}}}
}

// Search lists non-deleted jobs matching an optional keyword (LIKE on
// title/company) and an optional category. Pagination contract is identical
// to List.
func (r JobRepository) Search(q string, categoryID int64, p domain.PageRequest) ([]models.Job, int, error) {
	extra := ""
	args := []any{}
	if q != "" {
		extra += " AND (title LIKE ? OR company LIKE ?)"
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	if categoryID > 0 {
		extra += " AND job_category_id = ?"
		args = append(args, categoryID)
	}
	if extra == "" {
		return r.List(p)
	}
	return r.listWhere(p, extra[1:], args)
}
