package domi

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/domiapi/nanobanana-http/internal/logger"
)

// EditRequest describes an image-edit job. Image is either an absolute URL or
// a base64-encoded byte string.
type EditRequest struct {
	Image string

	Prompt string
}

type editPayload struct {
	Prompt    string   `json:"prompt"`
	ImageURLs []string `json:"image_urls"`
}

// EditImage submits an edit job and polls it to a terminal outcome. The image
// reference is classified only to accept or reject the call; the upstream
// endpoint takes the raw string either way.
func (c *Client) EditImage(ctx context.Context, req EditRequest) (*Result, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	image := strings.TrimSpace(req.Image)
	if image == "" {
		return nil, newErrorf(CodeInvalidImage, "image cannot be empty")
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, newErrorf(CodeInvalidPrompt, "prompt cannot be empty")
	}
	if ClassifyImageRef(image) == RefInvalid {
		return nil, newErrorf(CodeInvalidImageFormat, "invalid image format, must be a valid URL or base64 encoded string")
	}

	payload := editPayload{Prompt: prompt, ImageURLs: []string{image}}
	raw, perr := c.postJSON(ctx, editPath, payload, editTimeout)
	if perr != nil {
		return nil, perr
	}
	var resp submitResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.Code != 200 || resp.Data.TaskID == "" {
		return nil, newErrorf(CodeUnexpectedEditResponse, "unexpected edit API response: %s", raw)
	}
	logger.Infof("edit task %s submitted", resp.Data.TaskID)

	return c.newPoller(taskEdit).Wait(ctx, resp.Data.TaskID)
}
