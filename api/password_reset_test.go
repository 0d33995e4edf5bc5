package api

import (
	"net/http"
	"testing"
	"time"

	"starmaker/coaching-api/model"
	"starmaker/coaching-api/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestForgotPasswordUnknownEmail(t *testing.T) {
	a, mailer := newTestAPI(t)

	code, resp := doJSON(t, a, http.MethodPost, "/api/auth/forgot-password", gin.H{
		"email": "nobody@example.com",
	}, nil)
	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Success)
	require.Equal(t, "If the email exists, an OTP has been sent to your email.", resp.Message)

	// No mail, no ledger entry
	require.Zero(t, mailer.sent)

	var otps int64
	require.NoError(t, a.DB.Model(&model.Otp{}).Count(&otps).Error)
	require.Zero(t, otps)
}

func TestForgotPasswordInvalidEmail(t *testing.T) {
	a, _ := newTestAPI(t)

	code, resp := doJSON(t, a, http.MethodPost, "/api/auth/forgot-password", gin.H{
		"email": "not-an-email",
	}, nil)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Invalid email format", resp.Message)
}

func TestForgotPasswordMailFailureKeepsOTP(t *testing.T) {
	a, mailer := newTestAPI(t)
	registerUser(t, a, "Asha", "a@b.com", "secret1")

	mailer.fail = true

	code, resp := doJSON(t, a, http.MethodPost, "/api/auth/forgot-password", gin.H{
		"email": "a@b.com",
	}, nil)
	require.Equal(t, http.StatusInternalServerError, code)
	require.False(t, resp.Success)

	// The issued code is not rolled back, the next request re-issues
	var otps int64
	require.NoError(t, a.DB.Model(&model.Otp{}).Where("used = ?", false).Count(&otps).Error)
	require.EqualValues(t, 1, otps)
}

func TestPasswordResetFlow(t *testing.T) {
	a, mailer := newTestAPI(t)
	registerUser(t, a, "Asha", "x@y.com", "oldpass1")

	code, _ := doJSON(t, a, http.MethodPost, "/api/auth/forgot-password", gin.H{
		"email": "x@y.com",
	}, nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "x@y.com", mailer.lastTo)
	require.Len(t, mailer.lastCode, 6)

	code, resp := doJSON(t, a, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"email": "x@y.com",
		"otp":   mailer.lastCode,
	}, nil)
	require.Equal(t, http.StatusOK, code)

	resetToken := resp.Data["resetToken"].(string)
	require.NotEmpty(t, resetToken)

	// The code is single use
	code, resp = doJSON(t, a, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"email": "x@y.com",
		"otp":   mailer.lastCode,
	}, nil)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Invalid OTP", resp.Message)

	code, resp = doJSON(t, a, http.MethodPost, "/api/auth/reset-password", gin.H{
		"resetToken":  resetToken,
		"newPassword": "newpass1",
	}, nil)
	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Success)

	// Old password no longer works, the new one does
	code, _ = doJSON(t, a, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "x@y.com",
		"password": "oldpass1",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, code)

	code, _ = doJSON(t, a, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "x@y.com",
		"password": "newpass1",
	}, nil)
	require.Equal(t, http.StatusOK, code)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	a, mailer := newTestAPI(t)
	registerUser(t, a, "Asha", "a@b.com", "secret1")

	code, _ := doJSON(t, a, http.MethodPost, "/api/auth/forgot-password", gin.H{"email": "a@b.com"}, nil)
	require.Equal(t, http.StatusOK, code)

	wrong := "000000"
	if mailer.lastCode == wrong {
		wrong = "000001"
	}

	code, resp := doJSON(t, a, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"email": "a@b.com",
		"otp":   wrong,
	}, nil)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Invalid OTP", resp.Message)
}

func TestVerifyOTPExpired(t *testing.T) {
	a, mailer := newTestAPI(t)
	registerUser(t, a, "Asha", "a@b.com", "secret1")

	code, _ := doJSON(t, a, http.MethodPost, "/api/auth/forgot-password", gin.H{"email": "a@b.com"}, nil)
	require.Equal(t, http.StatusOK, code)

	require.NoError(t, a.DB.Model(&model.Otp{}).
		Where("email = ?", "a@b.com").
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	// A matching but stale code gets the distinct expiry message
	code, resp := doJSON(t, a, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"email": "a@b.com",
		"otp":   mailer.lastCode,
	}, nil)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "OTP has expired. Please request a new one.", resp.Message)
}

func TestReissueInvalidatesOldCode(t *testing.T) {
	a, mailer := newTestAPI(t)
	registerUser(t, a, "Asha", "a@b.com", "secret1")

	code, _ := doJSON(t, a, http.MethodPost, "/api/auth/forgot-password", gin.H{"email": "a@b.com"}, nil)
	require.Equal(t, http.StatusOK, code)
	oldCode := mailer.lastCode

	code, _ = doJSON(t, a, http.MethodPost, "/api/auth/forgot-password", gin.H{"email": "a@b.com"}, nil)
	require.Equal(t, http.StatusOK, code)

	if oldCode != mailer.lastCode {
		code, resp := doJSON(t, a, http.MethodPost, "/api/auth/verify-otp", gin.H{
			"email": "a@b.com",
			"otp":   oldCode,
		}, nil)
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "Invalid OTP", resp.Message)
	}

	code, _ = doJSON(t, a, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"email": "a@b.com",
		"otp":   mailer.lastCode,
	}, nil)
	require.Equal(t, http.StatusOK, code)
}

func TestResetPasswordRejectsBadTokens(t *testing.T) {
	a, _ := newTestAPI(t)
	resp := registerUser(t, a, "Asha", "a@b.com", "secret1")

	sessionToken := resp.Data["token"].(string)

	expired, err := security.SignClaims(&security.Claims{
		UserID:  1,
		Email:   "a@b.com",
		Purpose: security.PurposeReset,
	}, -time.Minute)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":       "garbage",
		"expired":       expired,
		"session token": sessionToken,
	} {
		t.Run(name, func(t *testing.T) {
			code, resp := doJSON(t, a, http.MethodPost, "/api/auth/reset-password", gin.H{
				"resetToken":  token,
				"newPassword": "newpass1",
			}, nil)
			require.Equal(t, http.StatusBadRequest, code)
			require.Equal(t, "Invalid or expired reset token", resp.Message)
		})
	}

	// The password is untouched
	code, _ := doJSON(t, a, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "a@b.com",
		"password": "secret1",
	}, nil)
	require.Equal(t, http.StatusOK, code)
}

func TestResetPasswordShortPassword(t *testing.T) {
	a, mailer := newTestAPI(t)
	registerUser(t, a, "Asha", "a@b.com", "secret1")

	code, _ := doJSON(t, a, http.MethodPost, "/api/auth/forgot-password", gin.H{"email": "a@b.com"}, nil)
	require.Equal(t, http.StatusOK, code)

	code, resp := doJSON(t, a, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"email": "a@b.com",
		"otp":   mailer.lastCode,
	}, nil)
	require.Equal(t, http.StatusOK, code)

	code, resp = doJSON(t, a, http.MethodPost, "/api/auth/reset-password", gin.H{
		"resetToken":  resp.Data["resetToken"].(string),
		"newPassword": "pw",
	}, nil)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Password must be at least 6 characters long", resp.Message)

	code, _ = doJSON(t, a, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "a@b.com",
		"password": "secret1",
	}, nil)
	require.Equal(t, http.StatusOK, code)
}
