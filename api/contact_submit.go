package api

import (
	"net/http"

	"starmaker/coaching-api/model"
	"starmaker/coaching-api/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const refCharset = "0123456789abcdefghijklmnopqrstuvwxyz"

type contactBody struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

func (a *API) ContactSubmit(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data contactBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.FullName == "" || data.Email == "" || data.Subject == "" || data.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Full name, email, subject, and message are required",
			"requestID": requestID,
		})
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

	ref, err := gonanoid.Generate(refCharset, 12)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate reference ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	msg := model.ContactMessage{
		Ref:      ref,
		FullName: data.FullName,
		Email:    data.Email,
		Phone:    data.Phone,
		Subject:  data.Subject,
		Message:  data.Message,
	}

	if err := a.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store contact message", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	zap.L().Info("Contact form submission received",
		zap.String("ref", ref),
		zap.String("subject", data.Subject),
		zap.String("requestID", requestID),
	)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Message received",
		"requestID": requestID,
		"data": gin.H{
			"ref": ref,
		},
	})
}
