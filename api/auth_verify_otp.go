package api

import (
	"errors"
	"net/http"

	"starmaker/coaching-api/model"
	"starmaker/coaching-api/security"
	"starmaker/coaching-api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type verifyOTPBody struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (a *API) AuthVerifyOTP(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data verifyOTPBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Email == "" || data.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Email and OTP are required",
			"requestID": requestID,
		})
		return
	}

	rec, err := a.Otps.Verify(data.Email, data.OTP)
	if err != nil {
		if errors.Is(err, service.ErrOtpNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":   false,
				"message":   "Invalid OTP",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to verify OTP", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if rec.Expired() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "OTP has expired. Please request a new one.",
			"requestID": requestID,
		})
		return
	}

	if err := a.Otps.Consume(rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to consume OTP", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var user model.User

	if err := a.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success":   false,
				"message":   "User not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	resetToken, err := security.MakeResetToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "OTP verified successfully",
		"requestID": requestID,
		"data": gin.H{
			"resetToken": resetToken,
		},
	})
}
