package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/domiapi/nanobanana-http/internal/domi"
	"github.com/domiapi/nanobanana-http/internal/logger"
	"github.com/domiapi/nanobanana-http/internal/model"
)

// ImageEdit applies a text instruction to an existing image, referenced by
// URL or as base64 data.
func ImageEdit(c *gin.Context) {
	var req model.EditToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, model.ToolResult{
			Success:   false,
			Error:     "invalid request body: " + err.Error(),
			ErrorCode: domi.CodeInvalidRequest,
		})
		return
	}
	log := logger.With("request_id", uuid.NewString(), "tool", "image-edit")
	log.Infof("edit requested")

	result, err := resolveClient(req.APIToken).EditImage(c.Request.Context(), domi.EditRequest{
		Image:  req.Image,
		Prompt: req.Prompt,
	})
	if err != nil {
		log.Warnf("edit failed: %s", err)
		c.JSON(http.StatusOK, toolFailure(err))
		return
	}
	log.Infof("task %s completed", result.Metadata.TaskID)
	c.JSON(http.StatusOK, toolSuccess(result))
}
