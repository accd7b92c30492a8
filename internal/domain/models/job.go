package models

import "time"

type Job struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	JobCategoryID int64     `json:"job_category_id,omitempty"`
	SalaryMin     *int64    `json:"salary_min,omitempty"`
	SalaryMax     *int64    `json:"salary_max,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
