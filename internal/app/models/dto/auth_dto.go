package dto

import "time"

// LoginRequest is the body of both login endpoints.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// AdminLoginResponse is returned by POST /admin/login.
type AdminLoginResponse struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message" example:"Login successful"`
	AdminID   int64     `json:"admin_id" example:"1"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TeacherLoginResponse is returned by POST /teacher/login.
type TeacherLoginResponse struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message" example:"Login successful"`
	TeacherID int64     `json:"teacher_id" example:"1"`
	Name      string    `json:"name" example:"Dr. Sharma"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
