package models

// Placement is one department's placement statistics for an academic year.
type Placement struct {
	PlacementID    int64    `json:"placement_id"`
	DeptID         int64    `json:"dept_id"`
	DeptName       string   `json:"dept_name"`
	DeptCode       string   `json:"dept_code"`
	AcademicYear   string   `json:"academic_year"`
	StudentsPlaced int      `json:"students_placed"`
	TotalStudents  int      `json:"total_students"`
	HighestPackage *float64 `json:"highest_package"`
	AveragePackage *float64 `json:"average_package"`
}

// Percentage is StudentsPlaced/TotalStudents*100 with no guard: a zero total yields NaN or +Inf.
func (p Placement) Percentage() float64 {
	placed, total := float64(p.StudentsPlaced), float64(p.TotalStudents)
	return placed / total * 100
}
