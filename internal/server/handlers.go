package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"smscal/internal/twilio"
)

func (s *Server) handleSMSWebhook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	url := requestURL(r)
	fmt.Printf("Received SMS webhook at %s\n", url)

	params := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		params[key] = r.PostForm.Get(key)
	}

	signature := r.Header.Get("X-Twilio-Signature")
	if !s.validator.Validate(url, params, signature) {
		// Protocol-level rejection: the caller is not Twilio, so no TwiML
		// reply body is synthesized.
		fmt.Printf("Rejected webhook: %v\n", twilio.ErrBadSignature)
		http.Error(w, "invalid twilio signature", http.StatusBadRequest)
		return
	}

	body := strings.TrimSpace(r.PostForm.Get("Body"))
	fmt.Printf("Incoming SMS body: %s\n", body)

	mediaURLs := collectMediaURLs(r)

	reply := s.processor.HandleMessage(r.Context(), body, mediaURLs)
	twilio.WriteReply(w, reply)
}

// handleSMSProbe answers Twilio's HEAD health probe with an empty success.
func (s *Server) handleSMSProbe(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// collectMediaURLs reads NumMedia and the MediaUrl0..N-1 form fields.
func collectMediaURLs(r *http.Request) []string {
	count, err := strconv.Atoi(r.PostForm.Get("NumMedia"))
	if err != nil || count <= 0 {
		return nil
	}

	urls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if url := r.PostForm.Get(fmt.Sprintf("MediaUrl%d", i)); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

// requestURL reconstructs the public URL Twilio signed, honoring the
// forwarding headers set by the fronting proxy.
func requestURL(r *http.Request) string {
	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		if r.TLS != nil {
			scheme = "https"
		} else {
			scheme = "http"
		}
	}

	host := r.Header.Get("X-Forwarded-Host")
	if host == "" {
		host = r.Host
	}

	return fmt.Sprintf("%s://%s%s", scheme, host, r.URL.RequestURI())
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("Error encoding JSON response: %v\n", err)
	}
}
