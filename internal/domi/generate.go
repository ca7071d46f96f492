package domi

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/domiapi/nanobanana-http/internal/logger"
)

// SeedRandom is the sentinel seed meaning "let the server randomize".
const SeedRandom = -1

// GenerationRequest describes a text-to-image job.
type GenerationRequest struct {
	Prompt string

	Size string

	Seed int64
}

type generatePayload struct {
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
	Seed   *int64 `json:"seed,omitempty"`
}

// submitResponse is the async-accepted envelope both submission endpoints use.
type submitResponse struct {
	Code int `json:"code"`
	Data struct {
		TaskID string `json:"task_id"`
	} `json:"data"`
}

// GenerateImage submits a text-to-image job and polls it to a terminal
// outcome. Validation failures return before any network call.
func (c *Client) GenerateImage(ctx context.Context, req GenerationRequest) (*Result, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, newErrorf(CodeInvalidPrompt, "prompt cannot be empty")
	}
	if !IsValidSize(req.Size) {
		return nil, newErrorf(CodeInvalidSize, "invalid size %q, must be one of: %s", req.Size, sizeList())
	}

	payload := generatePayload{Prompt: prompt, Size: req.Size}
	if req.Seed != SeedRandom {
		seed := req.Seed
		payload.Seed = &seed
	}

	raw, perr := c.postJSON(ctx, generatePath, payload, generateTimeout)
	if perr != nil {
		return nil, perr
	}
	var resp submitResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.Code != 200 || resp.Data.TaskID == "" {
		return nil, newErrorf(CodeUnexpectedResponse, "unexpected API response format: %s", raw)
	}
	logger.Infof("generation task %s submitted", resp.Data.TaskID)

	return c.newPoller(taskGenerate).Wait(ctx, resp.Data.TaskID)
}
