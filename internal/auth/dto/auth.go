package dto

import authdomain "konasal-backend/internal/auth/domain"

type SignupRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	PasswordVerify string `json:"password_verify" binding:"required"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	PhoneNumber    string `json:"phone_number"`
	DateOfBirth    string `json:"date_of_birth"` // YYYY-MM-DD
	Gender         string `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token             string `json:"token" binding:"required"`
	NewPassword       string `json:"new_password" binding:"required"`
	NewPasswordVerify string `json:"new_password_verify" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	Gender      string `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
}

// MessageResponse carries the opaque acknowledgement most auth endpoints
// return. DebugCode is populated only in the gated no-transport mode.
type MessageResponse struct {
	Message   string `json:"message"`
	DebugCode string `json:"debug_code,omitempty"`
}

type LoginResponse struct {
	Message     string           `json:"message"`
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	User        *authdomain.User `json:"user"`
}
