package http

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-api/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}

	err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password)
	switch {
	case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrInvalidPhone):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "User registered. Please check your email for the verification code."})
	}
}

func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.auth.Verify(c.Request.Context(), req.Token)
	switch {
	case errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired verification code"})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
	}
}

func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.auth.SignIn(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":  "Login successful",
			"userId":   user.ID,
			"userName": user.Name,
			"token":    token,
		})
	}
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.auth.ForgotPassword(c.Request.Context(), req.Email)
	switch {
	case errors.Is(err, services.ErrEmailNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Password reset link sent to your email"})
	}
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.auth.ResetPassword(c.Request.Context(), req.Token, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
	}
}

func (h *Handler) GetProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), id)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, user)
	}
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), id, req.Name, req.Phone)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, services.ErrInvalidPhone):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
	}
}

func (h *Handler) ChangePassword(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.auth.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, services.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
	}
}
