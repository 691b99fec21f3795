package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header not set")
		}
		w.Write([]byte("hello, registry"))
	}))
	defer server.Close()

	client := New()
	body, err := client.FetchText(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchText() error: %v", err)
	}
	if body != "hello, registry" {
		t.Errorf("FetchText() = %q, want %q", body, "hello, registry")
	}
}

func TestFetchJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept header = %q, want application/json", got)
		}
		w.Write([]byte(`{"name":"vim","version":"1.27.2"}`))
	}))
	defer server.Close()

	var into struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}

	client := New()
	if err := client.FetchJSON(context.Background(), server.URL, &into); err != nil {
		t.Fatalf("FetchJSON() error: %v", err)
	}
	if into.Name != "vim" || into.Version != "1.27.2" {
		t.Errorf("FetchJSON() decoded %+v", into)
	}
}

func TestFetchJSONMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	var into map[string]any
	client := New()
	err := client.FetchJSON(context.Background(), server.URL, &into)
	if err == nil {
		t.Fatal("FetchJSON() error = nil, want parse error")
	}
	if !strings.Contains(err.Error(), "parsing JSON response") {
		t.Errorf("FetchJSON() error = %v, want parse error mentioning the URL", err)
	}
}

func TestPostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type header = %q, want application/json", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept header = %q, want application/json", got)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		if req["extensionId"] != "golang.go" {
			t.Errorf("request body = %v, want extensionId golang.go", req)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	var into struct {
		OK bool `json:"ok"`
	}

	client := New()
	err := client.PostJSON(context.Background(), server.URL, map[string]string{"extensionId": "golang.go"}, &into)
	if err != nil {
		t.Fatalf("PostJSON() error: %v", err)
	}
	if !into.OK {
		t.Error("PostJSON() did not decode the response")
	}
}

func TestNon200Status(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"no content", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := New()
			_, err := client.FetchText(context.Background(), server.URL)

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("FetchText() error = %v, want *StatusError", err)
			}
			if statusErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.status)
			}
			if !strings.Contains(statusErr.Error(), server.URL) {
				t.Errorf("error %q does not mention the URL", statusErr.Error())
			}
		})
	}
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New()
	if _, err := client.FetchText(ctx, server.URL); err == nil {
		t.Fatal("FetchText() with canceled context returned nil error")
	}
}
