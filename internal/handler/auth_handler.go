package handler

import (
	"net/http"

	"github.com/ahmadqo/school-attendance/internal/middleware"
	"github.com/ahmadqo/school-attendance/internal/response"
	"github.com/ahmadqo/school-attendance/internal/service"
	"github.com/ahmadqo/school-attendance/internal/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// @Summary      Admin login
// @Description  Authenticate an admin and open a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      service.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		writeError(w, err, "Terjadi kesalahan server")
		return
	}

	response.Success(w, "Login berhasil", result)
}

// Register godoc
// @Summary      Register admin
// @Description  Create another admin account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      service.RegisterRequest  true  "Admin data"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /admins [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if !utils.IsValidPassword(req.Password) {
		response.BadRequest(w, "Validasi gagal", utils.ValidationErrors{
			"password": "Password minimal 8 karakter dan harus mengandung huruf dan angka",
		})
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		writeError(w, err, "Terjadi kesalahan server")
		return
	}

	response.Created(w, "Admin berhasil dibuat", result)
}

// RefreshToken godoc
// @Summary      Refresh token
// @Description  Issue a new token pair while the session is alive
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      service.RefreshTokenRequest  true  "Refresh token"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/refresh [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req service.RefreshTokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tokenPair, err := h.authService.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, err, "Terjadi kesalahan server")
		return
	}

	response.Success(w, "Token berhasil diperbarui", tokenPair)
}

// Logout godoc
// @Summary      Logout
// @Description  End the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionIDFromContext(r.Context())
	if sessionID == "" {
		response.Unauthorized(w, "Admin tidak terautentikasi")
		return
	}

	if err := h.authService.Logout(r.Context(), sessionID); err != nil {
		writeError(w, err, "Gagal logout")
		return
	}

	response.Success(w, "Logout berhasil", nil)
}

// Me godoc
// @Summary      Current admin
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.GetAdminIDFromContext(r.Context())
	if adminID == "" {
		response.Unauthorized(w, "Admin tidak terautentikasi")
		return
	}

	admin, err := h.authService.Me(r.Context(), adminID)
	if err != nil {
		writeError(w, err, "Gagal mengambil data admin")
		return
	}

	response.Success(w, "Data admin berhasil diambil", admin)
}
