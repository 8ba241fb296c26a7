package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type askRequest struct {
	Query     string `json:"query"`
	Timestamp string `json:"timestamp"`
}

func main() {
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8082"
	}
	var delay time.Duration
	if s := strings.TrimSpace(os.Getenv("DELAY")); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			log.Fatalf("bad DELAY %q: %v", s, err)
		}
		delay = d
	}
	failStatus := 0
	if s := strings.TrimSpace(os.Getenv("FAIL_STATUS")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			log.Fatalf("bad FAIL_STATUS %q: %v", s, err)
		}
		failStatus = n
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		log.Printf("query=%q timestamp=%q", req.Query, req.Timestamp)

		if delay > 0 {
			time.Sleep(delay)
		}
		if failStatus != 0 {
			http.Error(w, "stub failure", failStatus)
			return
		}

		start := time.Now()
		w.Header().Set("Content-Type", "application/json")
		// One source uses the primary field names, one the alternates, so
		// clients exercise both sides of their fallback handling.
		_ = json.NewEncoder(w).Encode(map[string]any{
			"answer": "Stub answer for: " + req.Query,
			"metadata": map[string]any{
				"fileCount":      3,
				"timestamp":      time.Now().UTC().Format(time.RFC3339),
				"processingTime": time.Since(start).Seconds() + 0.12,
			},
			"sources": []map[string]any{
				{"name": "Stub Handbook", "url": "https://example.com/handbook"},
				{"title": "Stub Notes", "link": "https://example.com/notes"},
			},
		})
	})

	log.Printf("webhook-stub listening on %s (delay=%s failStatus=%d)", addr, delay, failStatus)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
