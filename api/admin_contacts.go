package api

import (
	"net/http"

	"starmaker/coaching-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) AdminContacts(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var messages []model.ContactMessage

	err := a.DB.
		Order("created_at DESC").
		Limit(100).
		Find(&messages).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch contact messages", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Contact messages fetched",
		"requestID": requestID,
		"data": gin.H{
			"messages": messages,
		},
	})
}
