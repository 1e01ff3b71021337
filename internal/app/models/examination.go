package models

// Examination is one timetable slot. Dates and times travel as the strings the form inputs use.
type Examination struct {
	ExamID     int64  `json:"exam_id"`
	ExamName   string `json:"exam_name"`
	ExamType   string `json:"exam_type"`
	DeptID     *int64 `json:"dept_id"`
	DeptName   string `json:"dept_name"`
	Year       *int   `json:"year"`
	Subject    string `json:"subject"`
	ExamDate   string `json:"exam_date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	RoomNumber string `json:"room_number"`
}
