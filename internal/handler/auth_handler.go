package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hctech/phuocthai-backend/internal/service"
)

// AuthHandler xử lý đăng nhập, làm mới token và hồ sơ cá nhân.
type AuthHandler struct {
	authSvc *service.AuthService
}

func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	User   *userInfo          `json:"user"`
	Tokens *service.TokenPair `json:"tokens"`
}

type userInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Thiếu tên đăng nhập hoặc mật khẩu")
		return
	}

	user, tokens, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}

	Success(c, loginResponse{
		User: &userInfo{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     user.Role,
		},
		Tokens: tokens,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Thiếu refresh token")
		return
	}

	tokens, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			// Refresh token hỏng hay bị thu hồi đều trả 401 để client đăng nhập lại.
			Unauthorized(c, ve.Message)
			return
		}
		HandleError(c, err)
		return
	}
	Success(c, tokens)
}

// Logout POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req refreshRequest
	// Không có refresh token vẫn cho đăng xuất, chỉ không thu hồi được.
	_ = c.ShouldBindJSON(&req)
	if req.RefreshToken != "" {
		_ = h.authSvc.Logout(c.Request.Context(), req.RefreshToken)
	}
	Success(c, gin.H{"message": "Đã đăng xuất"})
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authSvc.GetCurrentUser(c.Request.Context(), GetUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, &userInfo{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	})
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Thiếu mật khẩu cũ hoặc mật khẩu mới")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), GetUserID(c), req.OldPassword, req.NewPassword); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"message": "Đổi mật khẩu thành công"})
}
