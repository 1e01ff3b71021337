package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/middleware"
)

const loginSuccessMessage = "Login successful"

// AuthController handles the admin and teacher logins
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// AdminLogin handles admin login
// @Summary Admin login
// @Description Verifies admin credentials and issues a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Admin credentials"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 400 {object} dto.Envelope "Missing username or password"
// @Failure 401 {object} dto.Envelope "Invalid credentials"
// @Router /admin/login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	result, ok := c.login(ctx, models.RoleAdmin)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminLoginResponse{
		Success:   true,
		Message:   loginSuccessMessage,
		AdminID:   result.Account.ID,
		Token:     result.Token.Token,
		ExpiresAt: result.Token.ExpiresAt,
	})
}

// TeacherLogin handles teacher login
// @Summary Teacher login
// @Description Verifies teacher credentials and issues a bearer token carrying the teacher's name
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Teacher credentials"
// @Success 200 {object} dto.TeacherLoginResponse
// @Failure 400 {object} dto.Envelope "Missing username or password"
// @Failure 401 {object} dto.Envelope "Invalid credentials"
// @Router /teacher/login [post]
func (c *AuthController) TeacherLogin(ctx *gin.Context) {
	result, ok := c.login(ctx, models.RoleTeacher)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherLoginResponse{
		Success:   true,
		Message:   loginSuccessMessage,
		TeacherID: result.Account.ID,
		Name:      result.Account.Name,
		Token:     result.Token.Token,
		ExpiresAt: result.Token.ExpiresAt,
	})
}

func (c *AuthController) login(ctx *gin.Context, role models.Role) (*services.LoginResult, bool) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return nil, false
	}

	result, err := c.authService.Login(ctx.Request.Context(), role, req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	return result, true
}
