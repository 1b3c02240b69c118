package delivery

import (
	"net/http"
	"time"

	authdto "konasal-backend/internal/auth/dto"
	"konasal-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const accessTokenCookie = "access_token"

// AuthHandler exposes the auth lifecycle over HTTP.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Signup(c.Request.Context(), &req)
	if err != nil {
		c.JSON(StatusFor(err), gin.H{"error": message(err)})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req authdto.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.VerifyEmail(c.Request.Context(), req.Email, req.Code); err != nil {
		c.JSON(StatusFor(err), gin.H{"error": message(err)})
		return
	}
	c.JSON(http.StatusOK, authdto.MessageResponse{Message: "Email verified successfully"})
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req authdto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.ResendVerification(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(StatusFor(err), gin.H{"error": message(err)})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		c.JSON(StatusFor(err), gin.H{"error": message(err)})
		return
	}

	// Cookie for browser clients; the body carries the token for everyone else.
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(accessTokenCookie, result.AccessToken, int(time.Until(result.ExpiresAt).Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, authdto.LoginResponse{
		Message:     "Login successful",
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		User:        result.User,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := presentedToken(c)
	if err := h.authUsecase.Logout(c.Request.Context(), token); err != nil {
		c.JSON(StatusFor(err), gin.H{"error": message(err)})
		return
	}

	c.SetCookie(accessTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, authdto.MessageResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req authdto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(StatusFor(err), gin.H{"error": message(err)})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req authdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.ResetPassword(c.Request.Context(), &req); err != nil {
		c.JSON(StatusFor(err), gin.H{"error": message(err)})
		return
	}
	c.JSON(http.StatusOK, authdto.MessageResponse{Message: "Password reset successfully"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.authUsecase.UpdateProfile(c.Request.Context(), user.ID, &req)
	if err != nil {
		c.JSON(StatusFor(err), gin.H{"error": message(err)})
		return
	}
	c.JSON(http.StatusOK, updated)
}
