package domi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/domiapi/nanobanana-http/internal/logger"
)

type taskKind int

const (
	taskGenerate taskKind = iota
	taskEdit
)

func (k taskKind) model() string {
	if k == taskEdit {
		return ModelEdit
	}
	return ModelGenerate
}

func (k taskKind) failureCode() string {
	if k == taskEdit {
		return CodeEditFailed
	}
	return CodeGenerationFailed
}

func (k taskKind) failureMessage() string {
	if k == taskEdit {
		return "Image editing failed"
	}
	return "Image generation failed"
}

func (k taskKind) noImageCode() string {
	if k == taskEdit {
		return CodeNoEditedImage
	}
	return CodeNoImageInCompletedTask
}

func (k taskKind) timeoutMessage() string {
	if k == taskEdit {
		return "Image editing timeout"
	}
	return "Image generation timeout"
}

// Result is the terminal success of a generation or edit task.
type Result struct {
	ImageURL string

	Metadata Metadata
}

// Metadata echoes what the status endpoint reported about the finished task.
type Metadata struct {
	TaskID string

	Status string

	StatusCode string

	CreateTime interface{}

	UpdateTime interface{}

	Action string

	Model string
}

type statusPayload struct {
	ID string `json:"id"`
}

// statusResponse is the envelope the status endpoint answers with.
type statusResponse struct {
	Code int         `json:"code"`
	Data *taskStatus `json:"data"`
}

// taskStatus carries two overlapping progress signals: a free-form state text
// and a string digit status code (0/1/2 in progress, 3 succeeded, 4 failed).
// They are not guaranteed synchronized and must be OR-combined per category.
type taskStatus struct {
	State      string      `json:"state"`
	Status     string      `json:"status"`
	Msg        string      `json:"msg"`
	Action     string      `json:"action"`
	CreateTime interface{} `json:"create_time"`
	UpdateTime interface{} `json:"update_time"`
	Data       struct {
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"data"`
}

var inProgressStates = map[string]struct{}{
	"pending":    {},
	"processing": {},
	"queued":     {},
	"running":    {},
}

// taskPoller drives a submitted task to a terminal outcome by querying the
// status endpoint at a fixed interval under a bounded attempt budget. Attempt
// and the last observed signals are exported for observability.
type taskPoller struct {
	client *Client
	kind   taskKind

	Attempt        int
	LastState      string
	LastStatusCode string

	started time.Time
}

func (c *Client) newPoller(kind taskKind) *taskPoller {
	return &taskPoller{client: c, kind: kind}
}

// Elapsed reports how long the poller has been waiting on the task.
func (p *taskPoller) Elapsed() time.Duration {
	return time.Since(p.started)
}

// Wait polls until the task is terminal or the attempt budget runs out.
// Transport failures are retried within the budget; every other error is
// terminal on first occurrence.
func (p *taskPoller) Wait(ctx context.Context, taskID string) (*Result, error) {
	p.started = time.Now()
	for p.Attempt = 1; ; p.Attempt++ {
		result, again, err := p.pollOnce(ctx, taskID)
		switch {
		case err != nil && again:
			logger.Warnf("task %s poll attempt %d/%d failed: %s", taskID, p.Attempt, p.client.maxPollAttempts, err)
			if p.Attempt >= p.client.maxPollAttempts {
				return nil, newErrorf(CodePollingError, "status polling failed: %v", err)
			}
		case err != nil:
			return nil, err
		case !again:
			logger.Infof("task %s finished after %d attempts in %s", taskID, p.Attempt, p.Elapsed())
			return result, nil
		default:
			logger.Debugf("task %s still running, attempt %d/%d, state: %s, code: %s",
				taskID, p.Attempt, p.client.maxPollAttempts, p.LastState, p.LastStatusCode)
			if p.Attempt >= p.client.maxPollAttempts {
				return nil, newErrorf(CodeTimeout, "%s", p.kind.timeoutMessage())
			}
		}
		if err := p.sleep(ctx); err != nil {
			return nil, err
		}
	}
}

// pollOnce performs one status query. again reports whether the caller should
// keep polling: true with a nil error means the task is still in flight, true
// with an error means a transient transport failure.
func (p *taskPoller) pollOnce(ctx context.Context, taskID string) (result *Result, again bool, err error) {
	raw, perr := p.client.postJSON(ctx, statusPath, statusPayload{ID: taskID}, statusTimeout)
	if perr != nil {
		if perr.Code == CodeAPIError {
			return nil, false, &Error{
				Code:       CodeStatusCheckError,
				Message:    "status check failed: " + perr.Message,
				HTTPStatus: perr.HTTPStatus,
			}
		}
		return nil, true, perr
	}

	var resp statusResponse
	if uerr := json.Unmarshal(raw, &resp); uerr != nil || resp.Code != 200 || resp.Data == nil {
		return nil, false, newErrorf(CodeInvalidStatusResponse, "invalid status response: %s", raw)
	}
	st := resp.Data

	state := st.State
	if state == "" {
		state = "unknown"
	}
	code := st.Status
	if code == "" {
		code = "0"
	}
	p.LastState, p.LastStatusCode = state, code

	// Decision rules are checked in a fixed order, success first. Each rule
	// ORs the state text with the status code so a lagging signal cannot
	// stall a task the other signal already settled.
	switch {
	case state == "succeeded" || code == "3":
		imageURL := ""
		if len(st.Data.Images) > 0 {
			imageURL = st.Data.Images[0].URL
		}
		if imageURL == "" {
			return nil, false, newErrorf(p.kind.noImageCode(), "no image URL in completed task %s", taskID)
		}
		return &Result{ImageURL: imageURL, Metadata: p.metadata(taskID, state, code, st)}, false, nil
	case state == "failed" || code == "4":
		msg := st.Msg
		if msg == "" {
			msg = p.kind.failureMessage()
		}
		return nil, false, newErrorf(p.kind.failureCode(), "%s", msg)
	case code == "0" || code == "1" || code == "2":
		return nil, true, nil
	default:
		if _, running := inProgressStates[state]; running {
			return nil, true, nil
		}
		return nil, false, newErrorf(CodeUnknownStatus, "unknown task status: %s (code: %s)", state, code)
	}
}

func (p *taskPoller) metadata(taskID, state, code string, st *taskStatus) Metadata {
	m := Metadata{
		TaskID:     taskID,
		Status:     state,
		StatusCode: code,
		Model:      p.kind.model(),
	}
	switch p.kind {
	case taskEdit:
		m.Action = st.Action
		if m.Action == "" {
			m.Action = "edit"
		}
	default:
		m.CreateTime = st.CreateTime
		m.UpdateTime = st.UpdateTime
	}
	return m
}

func (p *taskPoller) sleep(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return newErrorf(CodePollingError, "polling interrupted: %v", ctx.Err())
	case <-time.After(p.client.pollInterval):
		return nil
	}
}
