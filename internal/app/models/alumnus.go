package models

type Alumnus struct {
	AlumniID        int64  `json:"alumni_id"`
	Name            string `json:"name"`
	RollNumber      string `json:"roll_number"`
	DeptName        string `json:"dept_name"`
	GraduationYear  int    `json:"graduation_year"`
	CurrentCompany  string `json:"current_company"`
	CurrentPosition string `json:"current_position"`
	Email           string `json:"email"`
}
