package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
)

func TestAnthropicComplete_Success(t *testing.T) {
	var gotReq map[string]interface{}
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"msg_1","type":"message","role":"assistant","model":"claude-test",
			"content":[{"type":"text","text":"{\"title\":"},{"type":"text","text":"\"X\"}"}],
			"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":1}}`)
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key", srv.URL, "claude-test", ProviderOptions{})
	text, err := p.Complete(context.Background(), "make dal")
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if text != `{"title":"X"}` {
		t.Errorf("text = %q, want concatenated text blocks", text)
	}
	if gotPath != "/v1/messages" {
		t.Errorf("path = %q, want /v1/messages", gotPath)
	}
	if gotReq["temperature"] != 0.7 {
		t.Errorf("temperature = %v, want 0.7", gotReq["temperature"])
	}
	if gotReq["model"] != "claude-test" {
		t.Errorf("model = %v", gotReq["model"])
	}
}

func TestAnthropicComplete_AuthFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`)
	}))
	defer srv.Close()

	p := NewAnthropicProvider("bad-key", srv.URL, "claude-test", ProviderOptions{MaxRetries: 2})
	_, err := p.Complete(context.Background(), "p")
	var modelErr *ModelError
	if !errors.As(err, &modelErr) {
		t.Fatalf("error = %v, want *ModelError", err)
	}
	if modelErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", modelErr.StatusCode)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}

func TestExtractTextContent_NoText(t *testing.T) {
	msg := &anthropic.Message{Content: []anthropic.ContentBlockUnion{{Type: "tool_use"}}}
	if _, err := extractTextContent(msg); err == nil {
		t.Error("extractTextContent should fail without text blocks")
	}
}
