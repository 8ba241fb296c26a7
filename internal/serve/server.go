package serve

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/askhookio/askhook/internal/provider"
	"github.com/askhookio/askhook/internal/ui"
	"github.com/askhookio/askhook/internal/webhook"
)

// Server exposes the search widget page and a JSON proxy in front of the
// configured answer provider.
type Server struct {
	Addr      string
	Answerer  provider.Answerer
	Endpoint  string
	Formatter *ui.Formatter
	Log       zerolog.Logger
}

// Handler builds the route table with CORS applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/ask", s.handleAskForm).Methods(http.MethodPost)
	r.HandleFunc("/api/ask", s.handleAskJSON).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(r)
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	s.Log.Info().Str("addr", addr).Msg("serving search widget")
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "provider": s.Answerer.Name()})
}

type askRequest struct {
	Query string `json:"query"`
}

type askResponse struct {
	Answer   string        `json:"answer"`
	Metadata *metadataJSON `json:"metadata,omitempty"`
	Sources  []sourceJSON  `json:"sources,omitempty"`
}

type metadataJSON struct {
	FileCount      *int     `json:"fileCount,omitempty"`
	Timestamp      string   `json:"timestamp,omitempty"`
	ProcessingTime *float64 `json:"processingTime,omitempty"`
}

type sourceJSON struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// handleAskJSON proxies a query to the answer provider and returns the
// resolved response so widget scripts never deal with fallback field names.
func (s *Server) handleAskJSON(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	res, err := s.Answerer.Answer(r.Context(), query)
	if err != nil {
		s.Log.Error().Err(err).Msg("proxy query failed")
		writeError(w, statusFor(err), ui.ErrorMessage(err, s.Endpoint))
		return
	}

	out := askResponse{Answer: res.Answer}
	if md := res.Metadata; md != nil {
		out.Metadata = &metadataJSON{
			FileCount:      md.FileCount,
			Timestamp:      md.Timestamp,
			ProcessingTime: md.ProcessingTime,
		}
	}
	for _, src := range res.Sources {
		out.Sources = append(out.Sources, sourceJSON{Name: src.Name, URL: ui.SafeURL(src.URL)})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// handleAskForm is the no-script fallback: it runs the full controller
// lifecycle against an HTML view and returns a server-rendered result page.
func (s *Server) handleAskForm(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	view := ui.NewHTMLView(r.PostFormValue("query"), s.Formatter)
	ctrl := ui.NewController(view, s.Answerer, s.Endpoint, s.Log)
	ctrl.Submit(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	body := view.Fragment()
	if notice := view.Notice(); notice != "" {
		body = `<p class="notice">` + ui.EscapeText(notice) + `</p>`
	}
	_, _ = w.Write([]byte(resultPageHead + body + resultPageFoot))
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// statusFor maps provider failure kinds onto proxy status codes.
func statusFor(err error) int {
	var te *webhook.TimeoutError
	if errors.As(err, &te) {
		return http.StatusGatewayTimeout
	}
	var tr *webhook.TransportError
	var se *webhook.StatusError
	if errors.As(err, &tr) || errors.As(err, &se) {
		return http.StatusBadGateway
	}
	var de *webhook.DecodeError
	if errors.As(err, &de) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
