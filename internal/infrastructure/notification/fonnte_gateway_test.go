package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewFonnteGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		if _, err := NewFonnteGateway(""); !errors.Is(err, ErrMissingFonnteAPIKey) {
			t.Fatalf("expected ErrMissingFonnteAPIKey, got %v", err)
		}
	})

	t.Run("mock mode ignores token", func(t *testing.T) {
		t.Setenv("NOTIFICATION_MOCK", "true")
		g, err := NewFonnteGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp, err := g.SendText(context.Background(), "628123", "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var m map[string]any
		if err := json.Unmarshal(resp, &m); err != nil {
			t.Fatalf("invalid mock response: %v", err)
		}
		if m["status"] != true || m["target"] != "628123" {
			t.Fatalf("unexpected mock response %v", m)
		}
	})
}

func TestFonnteGateway_SendText(t *testing.T) {
	t.Run("posts form and relays body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Fatalf("unexpected form error: %v", err)
			}
			if r.PostForm.Get("target") != "628123" || r.PostForm.Get("message") != "invoice ready" || r.PostForm.Get("token") != "secret" {
				t.Fatalf("unexpected form %v", r.PostForm)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
				t.Fatalf("unexpected content type %q", ct)
			}
			w.Write([]byte(`{"status":true,"id":"abc"}`))
		}))
		defer srv.Close()

		g := &FonnteGateway{
			httpClient: &http.Client{Timeout: 5 * time.Second},
			apiURL:     srv.URL,
			token:      "secret",
		}

		resp, err := g.SendText(context.Background(), "628123", "invoice ready")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(resp) != `{"status":true,"id":"abc"}` {
			t.Fatalf("unexpected response %s", resp)
		}
	})

	t.Run("provider rejection body is relayed, not translated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"status":false,"reason":"invalid token"}`))
		}))
		defer srv.Close()

		g := &FonnteGateway{
			httpClient: &http.Client{Timeout: 5 * time.Second},
			apiURL:     srv.URL,
			token:      "bad",
		}

		resp, err := g.SendText(context.Background(), "628123", "hi")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(resp) != `{"status":false,"reason":"invalid token"}` {
			t.Fatalf("unexpected response %s", resp)
		}
	})

	t.Run("transport error surfaces", func(t *testing.T) {
		g := &FonnteGateway{
			httpClient: &http.Client{Timeout: time.Second},
			apiURL:     "http://127.0.0.1:1",
			token:      "secret",
		}
		if _, err := g.SendText(context.Background(), "628123", "hi"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
