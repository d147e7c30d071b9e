package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fashionstore/internal/service/chat"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func chatHandler(svc *chat.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "message required")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"response":    svc.Reply(req.Message),
			"suggestions": chat.Suggestions,
		})
	}
}
