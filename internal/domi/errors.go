package domi

import (
	"errors"
	"fmt"
)

// Error codes surfaced in tool results.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidPrompt      = "INVALID_PROMPT"
	CodeInvalidSize        = "INVALID_SIZE"
	CodeInvalidImage       = "INVALID_IMAGE"
	CodeInvalidImageFormat = "INVALID_IMAGE_FORMAT"

	CodeMissingAPIToken = "MISSING_API_TOKEN"

	CodeTimeout      = "TIMEOUT"
	CodeRequestError = "REQUEST_ERROR"
	CodeAPIError     = "API_ERROR"

	CodeUnexpectedResponse     = "UNEXPECTED_RESPONSE"
	CodeUnexpectedEditResponse = "UNEXPECTED_EDIT_RESPONSE"
	CodeInvalidStatusResponse  = "INVALID_STATUS_RESPONSE"
	CodeStatusCheckError       = "STATUS_CHECK_ERROR"
	CodeUnknownStatus          = "UNKNOWN_STATUS"
	CodePollingError           = "POLLING_ERROR"

	CodeGenerationFailed = "GENERATION_FAILED"
	CodeEditFailed       = "EDIT_FAILED"

	CodeNoImageInCompletedTask = "NO_IMAGE_IN_COMPLETED_TASK"
	CodeNoEditedImage          = "NO_EDITED_IMAGE"

	CodeInternalError = "INTERNAL_ERROR"
)

// Error is the failure value all client operations return. Code is one of the
// constants above; HTTPStatus carries the upstream status for API_ERROR and
// STATUS_CHECK_ERROR.
type Error struct {
	Code       string
	Message    string
	HTTPStatus int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newErrorf(code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts the typed error, or wraps an unknown one under fallbackCode.
func AsError(err error, fallbackCode string) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return &Error{Code: fallbackCode, Message: err.Error()}
}
