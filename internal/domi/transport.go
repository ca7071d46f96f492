package domi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// postJSON sends an authenticated POST with a per-call deadline and returns
// the raw body of a 200 response. Any other outcome is classified as TIMEOUT,
// REQUEST_ERROR or API_ERROR.
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, timeout time.Duration) (json.RawMessage, *Error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, newErrorf(CodeRequestError, "marshal request: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, newErrorf(CodeRequestError, "create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeoutErr(err) {
			return nil, newErrorf(CodeTimeout, "request timeout")
		}
		return nil, newErrorf(CodeRequestError, "request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newErrorf(CodeRequestError, "read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Code:       CodeAPIError,
			Message:    fmt.Sprintf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))),
			HTTPStatus: resp.StatusCode,
		}
	}
	return raw, nil
}

func isTimeoutErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
