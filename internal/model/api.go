package model

type GenerateToolRequest struct {
	Prompt string `json:"prompt"`

	Size string `json:"size"`

	Seed int64 `json:"seed"`

	APIToken string `json:"api_token"`
}

type EditToolRequest struct {
	Image string `json:"image"`

	Prompt string `json:"prompt"`

	APIToken string `json:"api_token"`
}

// ToolResult is the uniform envelope every tool call answers with. Failures
// are reported inside the envelope rather than through HTTP status codes.
type ToolResult struct {
	Success bool `json:"success"`

	ImageURL string `json:"image_url,omitempty"`

	Metadata *ResultMetadata `json:"metadata,omitempty"`

	Error string `json:"error,omitempty"`

	ErrorCode string `json:"error_code,omitempty"`
}

type ResultMetadata struct {
	TaskID string `json:"task_id"`

	Status string `json:"status"`

	StatusCode string `json:"status_code"`

	CreateTime interface{} `json:"create_time,omitempty"`

	UpdateTime interface{} `json:"update_time,omitempty"`

	Action string `json:"action,omitempty"`

	Model string `json:"model"`
}

type ValidateTokenRequest struct {
	APIToken string `json:"api_token"`
}

type TokenValidationResult struct {
	Valid bool `json:"valid"`

	Message string `json:"message"`

	TestResult *ToolResult `json:"test_result,omitempty"`

	Error string `json:"error,omitempty"`
}

type SizeInfo struct {
	Size string `json:"size"`

	Description string `json:"description"`

	UseCase string `json:"use_case"`
}

type SizeCatalog struct {
	SupportedSizes []SizeInfo `json:"supported_sizes"`

	DefaultSize string `json:"default_size"`

	Recommendation string `json:"recommendation"`
}

type GenerationPromptRequest struct {
	Subject string `json:"subject"`

	Style string `json:"style"`

	Size string `json:"size"`
}

type EditingPromptRequest struct {
	OriginalDescription string `json:"original_description"`

	EditingRequest string `json:"editing_request"`
}

type PromptResponse struct {
	Prompt string `json:"prompt"`
}
