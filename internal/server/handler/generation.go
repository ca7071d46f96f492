package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/domiapi/nanobanana-http/internal/domi"
	"github.com/domiapi/nanobanana-http/internal/logger"
	"github.com/domiapi/nanobanana-http/internal/model"
)

// TextToImage generates an image from a text prompt. Every failure is
// reported inside the envelope; the endpoint itself always answers 200.
func TextToImage(c *gin.Context) {
	req := model.GenerateToolRequest{Size: domi.DefaultSize, Seed: domi.SeedRandom}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, model.ToolResult{
			Success:   false,
			Error:     "invalid request body: " + err.Error(),
			ErrorCode: domi.CodeInvalidRequest,
		})
		return
	}
	log := logger.With("request_id", uuid.NewString(), "tool", "text-to-image")
	log.Infof("generation requested, size: %s", req.Size)

	result, err := resolveClient(req.APIToken).GenerateImage(c.Request.Context(), domi.GenerationRequest{
		Prompt: req.Prompt,
		Size:   req.Size,
		Seed:   req.Seed,
	})
	if err != nil {
		log.Warnf("generation failed: %s", err)
		c.JSON(http.StatusOK, toolFailure(err))
		return
	}
	log.Infof("task %s completed", result.Metadata.TaskID)
	c.JSON(http.StatusOK, toolSuccess(result))
}
