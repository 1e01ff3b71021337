package models

// Student is looked up one at a time by roll number.
type Student struct {
	StudentID  int64   `json:"student_id"`
	RollNumber string  `json:"roll_number"`
	Name       string  `json:"name"`
	DeptID     *int64  `json:"dept_id"`
	DeptName   string  `json:"dept_name"`
	DeptCode   string  `json:"dept_code"`
	Year       int     `json:"year"`
	Backlogs   int     `json:"backlogs"`
	FeePaid    float64 `json:"fee_paid"`
	FeePending float64 `json:"fee_pending"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
}
