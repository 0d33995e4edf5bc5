package api

import (
	"net/http"

	"starmaker/coaching-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) CourseList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var courses []model.Course

	if err := a.DB.Order("id").Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch courses", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Courses fetched",
		"requestID": requestID,
		"data": gin.H{
			"courses": courses,
		},
	})
}
