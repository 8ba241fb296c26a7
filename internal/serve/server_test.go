package serve

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/askhookio/askhook/internal/ui"
	"github.com/askhookio/askhook/internal/webhook"
)

func newTestServer(t *testing.T, backend http.HandlerFunc) (*Server, *httptest.Server) {
	t.Helper()
	hook := httptest.NewServer(backend)
	t.Cleanup(hook.Close)

	client := webhook.New(webhook.Config{Endpoint: hook.URL, Timeout: 2 * time.Second})
	srv := &Server{
		Answerer:  client,
		Endpoint:  hook.URL,
		Formatter: ui.NewFormatter("en"),
		Log:       zerolog.Nop(),
	}
	return srv, hook
}

func TestAskJSON_ResolvedResponse(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"message": "30 days, no questions asked.",
			"metadata": {"fileCount": 3},
			"sources": [{"title": "Policy Doc", "link": "https://docs.example/policy"}, {}]
		}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"query":"refund policy?"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var out askResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Answer != "30 days, no questions asked." {
		t.Fatalf("answer = %q", out.Answer)
	}
	if out.Metadata == nil || out.Metadata.FileCount == nil || *out.Metadata.FileCount != 3 {
		t.Fatalf("metadata = %+v", out.Metadata)
	}
	if len(out.Sources) != 2 {
		t.Fatalf("sources = %+v", out.Sources)
	}
	if out.Sources[0].Name != "Policy Doc" || out.Sources[0].URL != "https://docs.example/policy" {
		t.Fatalf("source[0] = %+v", out.Sources[0])
	}
	if out.Sources[1].Name != "Reference 2" || out.Sources[1].URL != "#" {
		t.Fatalf("empty source must resolve to defaults, got %+v", out.Sources[1])
	}
}

func TestAskJSON_EmptyQueryRejected(t *testing.T) {
	called := false
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"query":"   \n  "}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if called {
		t.Fatal("blank query must not reach the provider")
	}
}

func TestAskJSON_BackendFailureMapped(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"query":"q"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(out["error"], "500") {
		t.Fatalf("error should name the upstream status, got %q", out["error"])
	}
}

func TestAskForm_RendersResultPage(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer": "<b>bold</b> answer"}`))
	})

	form := strings.NewReader("query=anything")
	req := httptest.NewRequest(http.MethodPost, "/ask", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<b>bold</b>") {
		t.Fatal("answer markup must be escaped")
	}
	if !strings.Contains(body, "&lt;b&gt;bold&lt;/b&gt; answer") {
		t.Fatalf("escaped answer missing from page:\n%s", body)
	}
}

func TestIndex_ContainsWidget(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`id="query"`, `id="submit"`, "shiftKey", "/api/ask"} {
		if !strings.Contains(body, want) {
			t.Fatalf("index page missing %q", want)
		}
	}
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"webhook"`) {
		t.Fatalf("health must name the provider, got %s", rec.Body.String())
	}
}
