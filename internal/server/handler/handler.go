package handler

import (
	"github.com/domiapi/nanobanana-http/internal/domi"
	"github.com/domiapi/nanobanana-http/internal/model"
)

// resolveClient honors a per-call token over the shared default client.
func resolveClient(apiToken string) *domi.Client {
	client := domi.DefaultClient()
	if apiToken != "" {
		client = client.CloneWithToken(apiToken)
	}
	return client
}

func toolFailure(err error) model.ToolResult {
	derr := domi.AsError(err, domi.CodeInternalError)
	return model.ToolResult{
		Success:   false,
		Error:     derr.Message,
		ErrorCode: derr.Code,
	}
}

func toolSuccess(result *domi.Result) model.ToolResult {
	return model.ToolResult{
		Success:  true,
		ImageURL: result.ImageURL,
		Metadata: &model.ResultMetadata{
			TaskID:     result.Metadata.TaskID,
			Status:     result.Metadata.Status,
			StatusCode: result.Metadata.StatusCode,
			CreateTime: result.Metadata.CreateTime,
			UpdateTime: result.Metadata.UpdateTime,
			Action:     result.Metadata.Action,
			Model:      result.Metadata.Model,
		},
	}
}
