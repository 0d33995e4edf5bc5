package api

import (
	"crypto/subtle"
	"net/http"

	"starmaker/coaching-api/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type adminLoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin checks the submitted pair against the configured admin
// credentials. It never touches the users table, the admin is not an account.
func (a *API) AdminLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data adminLoginBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Email == "" || data.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Email and password are required",
			"requestID": requestID,
		})
		return
	}

	adminEmail := viper.GetString("admin.email")
	adminPassword := viper.GetString("admin.password")

	emailOK := subtle.ConstantTimeCompare([]byte(data.Email), []byte(adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(data.Password), []byte(adminPassword)) == 1

	if !emailOK || !passOK {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":   false,
			"message":   "Invalid admin credentials",
			"requestID": requestID,
		})
		return
	}

	token, err := security.MakeSessionToken(0, adminEmail, security.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate admin session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Admin login successful",
		"requestID": requestID,
		"data": gin.H{
			"user": gin.H{
				"email": adminEmail,
				"role":  security.RoleAdmin,
			},
			"token": token,
		},
	})
}
