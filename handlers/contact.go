package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"serenity/models"
)

// ContactHandler acknowledges contact form submissions. Nothing is stored;
// the submission is logged for follow-up.
type ContactHandler struct {
	Logger *zap.Logger
}

func NewContactHandler(logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Logger: logger}
}

// SubmitContact handles POST /api/contact.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var input models.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Warn("SubmitContact: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if input.Name == "" || input.Email == "" || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: name, email, message"})
		return
	}

	h.Logger.Info("contact form submission",
		zap.String("name", input.Name),
		zap.String("email", input.Email),
		zap.String("message", input.Message),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Thank you for your message. We will get back to you soon!",
		"status":  "received",
	})
}
