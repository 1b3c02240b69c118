package usecase

import (
	"context"
	"time"

	authdomain "konasal-backend/internal/auth/domain"
	authdto "konasal-backend/internal/auth/dto"
)

// AuthUsecase is the auth service: it owns the signup → verification →
// login → logout → password-reset lifecycle and every identity mutation.
type AuthUsecase interface {
	Signup(ctx context.Context, req *authdto.SignupRequest) (*authdto.MessageResponse, error)
	VerifyEmail(ctx context.Context, email, code string) error
	ResendVerification(ctx context.Context, email string) (*authdto.MessageResponse, error)
	Login(ctx context.Context, req *authdto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) (*authdto.MessageResponse, error)
	ResetPassword(ctx context.Context, req *authdto.ResetPasswordRequest) error

	// Authenticate resolves a presented session token to a user. It is the
	// gate in front of every protected endpoint.
	Authenticate(ctx context.Context, token string) (*authdomain.User, error)

	UpdateProfile(ctx context.Context, userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error)
}

// LoginResult carries the issued session token; delivery attaches it both
// as a cookie and in the JSON body for non-cookie clients.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *authdomain.User
}
