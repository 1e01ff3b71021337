package models

// Job is a placement-cell job notification.
type Job struct {
	JobID       int64    `json:"job_id"`
	CompanyName string   `json:"company_name"`
	Position    string   `json:"position"`
	Description string   `json:"description"`
	Eligibility string   `json:"eligibility"`
	Package     *float64 `json:"package"`
	Location    string   `json:"location"`
	LastDate    string   `json:"last_date"`
	PostedDate  string   `json:"posted_date"`
	IsActive    bool     `json:"is_active"`
}

// Internship is read-only for every role.
type Internship struct {
	InternshipID int64    `json:"internship_id"`
	CompanyName  string   `json:"company_name"`
	Position     string   `json:"position"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Stipend      *float64 `json:"stipend"`
	Location     string   `json:"location"`
	LastDate     string   `json:"last_date"`
	PostedDate   string   `json:"posted_date"`
	IsActive     bool     `json:"is_active"`
}
