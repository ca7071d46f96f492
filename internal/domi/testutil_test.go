package domi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// fakeAPI stands in for the upstream image API. Submit and status behavior
// can be scripted per test; counters record how many calls were made.
type fakeAPI struct {
	t   *testing.T
	srv *httptest.Server

	mu              sync.Mutex
	submitCalls     int
	statusCalls     int
	lastSubmitBody  map[string]interface{}
	lastAuth        string
	lastContentType string

	submit func(w http.ResponseWriter, r *http.Request)
	status func(call int, w http.ResponseWriter, r *http.Request)
}

func newFakeAPI(t *testing.T) *fakeAPI {
	f := &fakeAPI{t: t}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.lastAuth = r.Header.Get("Authorization")
	f.lastContentType = r.Header.Get("Content-Type")
	f.mu.Unlock()

	switch r.URL.Path {
	case generatePath, editPath:
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.submitCalls++
		f.lastSubmitBody = map[string]interface{}{}
		_ = json.Unmarshal(body, &f.lastSubmitBody)
		f.mu.Unlock()
		if f.submit != nil {
			f.submit(w, r)
			return
		}
		writeJSON(w, `{"code":200,"data":{"task_id":"task-1"}}`)
	case statusPath:
		f.mu.Lock()
		f.statusCalls++
		call := f.statusCalls
		f.mu.Unlock()
		if f.status != nil {
			f.status(call, w, r)
			return
		}
		writeJSON(w, succeededStatus("https://img.example/out.png"))
	default:
		http.NotFound(w, r)
	}
}

// client builds a client pointed at the fake with a fast poll interval.
func (f *fakeAPI) client(opts ...Option) *Client {
	base := []Option{
		WithToken("test-token"),
		WithBaseURL(f.srv.URL),
		WithPollInterval(time.Millisecond),
	}
	return NewClient(append(base, opts...)...)
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func succeededStatus(url string) string {
	return fmt.Sprintf(`{"code":200,"data":{"state":"succeeded","status":"3","data":{"images":[{"url":"%s"}]}}}`, url)
}

func pendingStatus() string {
	return `{"code":200,"data":{"state":"pending","status":"0"}}`
}
