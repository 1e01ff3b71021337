package models

// Department only feeds select inputs and joins.
type Department struct {
	DeptID   int64  `json:"dept_id"`
	DeptName string `json:"dept_name"`
	DeptCode string `json:"dept_code"`
}
