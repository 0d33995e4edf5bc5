package api

import (
	"net/http"

	"starmaker/coaching-api/model"
	"starmaker/coaching-api/security"
	"starmaker/coaching-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type resetPasswordBody struct {
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword"`
}

func (a *API) AuthResetPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data resetPasswordBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.ResetToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Reset token and new password are required",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Password must be at least 6 characters long",
			"requestID": requestID,
		})
		return
	}

	claims, err := security.ParseToken(data.ResetToken)
	if err != nil || claims.Purpose != security.PurposeReset {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid or expired reset token",
			"requestID": requestID,
		})
		return
	}

	hash, err := a.Hash.GenerateFromPassword(data.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	r := a.DB.Model(&model.User{}).
		Where("id = ?", claims.UserID).
		Update("password_hash", hash)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update password", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success":   false,
			"message":   "User not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Password reset successfully",
		"requestID": requestID,
	})
}
