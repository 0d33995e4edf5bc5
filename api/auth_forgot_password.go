package api

import (
	"errors"
	"net/http"

	"starmaker/coaching-api/model"
	"starmaker/coaching-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type forgotPasswordBody struct {
	Email string `json:"email"`
}

// AuthForgotPassword starts the password reset flow. Whether the email has an
// account behind it or not the caller gets the same answer, only the mailbox
// owner learns the difference.
func (a *API) AuthForgotPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data forgotPasswordBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid email format",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	if err := a.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"success":   true,
				"message":   "If the email exists, an OTP has been sent to your email.",
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

	code, err := a.Otps.Issue(data.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Failed to send OTP. Please try again.",
			"requestID": requestID,
		})

		zap.L().Error("Failed to issue OTP", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// A failed delivery doesn't roll the code back, re-requesting simply
	// issues a new one and invalidates this one
	if err := a.Mailer.SendOTP(data.Email, code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Failed to send OTP email. Please try again later.",
			"requestID": requestID,
		})

		zap.L().Error("Failed to send OTP email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "OTP has been sent to your email. Please check your inbox.",
		"requestID": requestID,
	})
}
