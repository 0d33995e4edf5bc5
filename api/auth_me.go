package api

import (
	"errors"
	"net/http"

	"starmaker/coaching-api/model"
	"starmaker/coaching-api/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthMe returns the account behind the presented session token. Admin
// sessions aren't backed by a row in the users table so they get their
// claims echoed back instead.
func (a *API) AuthMe(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if c.GetString("role") == security.RoleAdmin {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Session valid",
			"requestID": requestID,
			"data": gin.H{
				"user": gin.H{
					"email": c.GetString("email"),
					"role":  security.RoleAdmin,
				},
			},
		})
		return
	}

	var user model.User

	err := a.DB.Where("id = ?", c.GetUint("userID")).First(&user).Error
	if err != nil {
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

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Session valid",
		"requestID": requestID,
		"data": gin.H{
			"user": user,
		},
	})
}
