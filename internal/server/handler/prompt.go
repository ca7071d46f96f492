package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/domiapi/nanobanana-http/internal/domi"
	"github.com/domiapi/nanobanana-http/internal/model"
)

// GenerationPrompt renders an optimized text-to-image prompt template.
func GenerationPrompt(c *gin.Context) {
	var req model.GenerationPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject is required"})
		return
	}
	c.JSON(http.StatusOK, model.PromptResponse{
		Prompt: domi.GenerationPrompt(req.Subject, req.Style, req.Size),
	})
}

// EditingPrompt renders a detailed image-edit instruction template.
func EditingPrompt(c *gin.Context) {
	var req model.EditingPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.OriginalDescription == "" || req.EditingRequest == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "original_description and editing_request are required"})
		return
	}
	c.JSON(http.StatusOK, model.PromptResponse{
		Prompt: domi.EditingPrompt(req.OriginalDescription, req.EditingRequest),
	})
}
