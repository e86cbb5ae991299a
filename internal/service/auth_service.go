package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ahmadqo/school-attendance/internal/config"
	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/repository"
	"github.com/ahmadqo/school-attendance/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Request & Response DTOs
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Sanitize() {
	r.Username = utils.SanitizeString(strings.ToLower(r.Username))
}

type LoginResponse struct {
	Admin model.AdminResponse `json:"admin"`
	Token utils.TokenPair     `json:"token"`
}

type RegisterRequest struct {
	Username string `json:"username"     validate:"required,min=3,max=100"`
	Password string `json:"password"     validate:"required"`
	FullName string `json:"nama_lengkap" validate:"required,max=200"`
}

func (r *RegisterRequest) Sanitize() {
	r.Username = utils.SanitizeString(strings.ToLower(r.Username))
	r.FullName = utils.SanitizeString(r.FullName)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

var (
	ErrInvalidCredentials = newError(ErrUnauthorized, "Username atau password salah")
	ErrSessionExpired     = newError(ErrUnauthorized, "Sesi tidak valid atau sudah berakhir")
	ErrUsernameExists     = newError(ErrConflict, "Username sudah terdaftar")
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error)
	Authenticate(ctx context.Context, accessToken string) (*model.JWTClaims, error)
	Register(ctx context.Context, req RegisterRequest) (*model.AdminResponse, error)
	Me(ctx context.Context, adminID string) (*model.AdminResponse, error)
}

type authService struct {
	adminRepo   repository.AdminRepository
	sessionRepo repository.SessionRepository
	cfg         config.JWTConfig
}

func NewAuthService(adminRepo repository.AdminRepository, sessionRepo repository.SessionRepository, cfg config.JWTConfig) AuthService {
	return &authService{
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// Sesi hidup selama refresh token berlaku; logout menghapusnya lebih awal
func (s *authService) sessionTTL() time.Duration {
	return time.Duration(s.cfg.RefreshExpHours) * time.Hour
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	if err := s.sessionRepo.Create(ctx, sessionID, admin.ID.String(), s.sessionTTL()); err != nil {
		return nil, err
	}

	tokenPair, err := s.issue(admin, sessionID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Admin: admin.ToResponse(),
		Token: *tokenPair,
	}, nil
}

func (s *authService) issue(admin *model.Admin, sessionID string) (*utils.TokenPair, error) {
	claims := model.JWTClaims{
		AdminID:   admin.ID.String(),
		Username:  admin.Username,
		SessionID: sessionID,
	}
	return utils.GenerateTokenPair(claims, s.cfg.Secret, s.cfg.ExpireHours, s.cfg.RefreshExpHours)
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// Authenticate memvalidasi access token dan memastikan sesinya masih ada
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*model.JWTClaims, error) {
	claims, err := utils.ValidateToken(accessToken, s.cfg.Secret, utils.TokenTypeAccess)
	if err != nil {
		return nil, ErrSessionExpired
	}
	if err := s.checkSession(ctx, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *authService) checkSession(ctx context.Context, claims *model.JWTClaims) error {
	adminID, err := s.sessionRepo.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrSessionExpired
		}
		return err
	}
	if adminID != claims.AdminID {
		return ErrSessionExpired
	}
	return nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	claims, err := utils.ValidateToken(refreshToken, s.cfg.Secret, utils.TokenTypeRefresh)
	if err != nil {
		return nil, ErrSessionExpired
	}
	if err := s.checkSession(ctx, claims); err != nil {
		return nil, err
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return nil, ErrSessionExpired
	}
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.IsActive {
		_ = s.sessionRepo.Delete(ctx, claims.SessionID)
		return nil, ErrSessionExpired
	}

	if err := s.sessionRepo.Touch(ctx, claims.SessionID, s.sessionTTL()); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}

	return s.issue(admin, claims.SessionID)
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*model.AdminResponse, error) {
	existing, err := s.adminRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	resp := admin.ToResponse()
	return &resp, nil
}

func (s *authService) Me(ctx context.Context, adminID string) (*model.AdminResponse, error) {
	id, err := uuid.Parse(adminID)
	if err != nil {
		return nil, ErrInvalidID
	}

	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, newError(ErrNotFound, "Admin tidak ditemukan")
	}

	resp := admin.ToResponse()
	return &resp, nil
}
