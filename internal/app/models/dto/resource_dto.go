package dto

import "strings"

// PlacementRequest mirrors the placement form field names.
type PlacementRequest struct {
	DeptID         NullableInt   `json:"dept_id" swaggertype:"string" example:"1"`
	AcademicYear   string        `json:"academic_year" example:"2023-24"`
	StudentsPlaced NullableInt   `json:"students_placed" swaggertype:"string" example:"48"`
	TotalStudents  NullableInt   `json:"total_students" swaggertype:"string" example:"60"`
	HighestPackage NullableFloat `json:"highest_package" swaggertype:"string" example:"1200000"`
	AveragePackage NullableFloat `json:"average_package" swaggertype:"string" example:"650000"`
}

// JobRequest mirrors the job notification form field names.
type JobRequest struct {
	CompanyName string        `json:"company_name" example:"Infosys"`
	Position    string        `json:"position" example:"Systems Engineer"`
	Description string        `json:"description"`
	Eligibility string        `json:"eligibility" example:"B.Tech, no active backlogs"`
	Package     NullableFloat `json:"package" swaggertype:"string" example:"450000"`
	Location    string        `json:"location" example:"Pune"`
	LastDate    string        `json:"last_date" example:"2024-03-31"`
}

// ExaminationRequest mirrors the examination form field names.
type ExaminationRequest struct {
	ExamName   string      `json:"exam_name" example:"Mid Semester"`
	ExamType   string      `json:"exam_type" example:"Theory"`
	DeptID     NullableInt `json:"dept_id" swaggertype:"string" example:"1"`
	Year       NullableInt `json:"year" swaggertype:"string" example:"2"`
	Subject    string      `json:"subject" example:"Data Structures"`
	ExamDate   string      `json:"exam_date" example:"2024-04-15"`
	StartTime  string      `json:"start_time" example:"10:00"`
	EndTime    string      `json:"end_time" example:"13:00"`
	RoomNumber string      `json:"room_number" example:"B-204"`
}

// Trim normalizes the free-text fields in place.
func (r *JobRequest) Trim() {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Position = strings.TrimSpace(r.Position)
	r.Location = strings.TrimSpace(r.Location)
	r.LastDate = strings.TrimSpace(r.LastDate)
}

// Trim normalizes the free-text fields in place.
func (r *ExaminationRequest) Trim() {
	r.ExamName = strings.TrimSpace(r.ExamName)
	r.ExamType = strings.TrimSpace(r.ExamType)
	r.Subject = strings.TrimSpace(r.Subject)
	r.ExamDate = strings.TrimSpace(r.ExamDate)
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.EndTime = strings.TrimSpace(r.EndTime)
	r.RoomNumber = strings.TrimSpace(r.RoomNumber)
}

// Trim normalizes the free-text fields in place.
func (r *PlacementRequest) Trim() {
	r.AcademicYear = strings.TrimSpace(r.AcademicYear)
}
