package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/sisgate/gateway-api/internal/store"
)

// Hop-by-hop headers are connection-scoped and must not be forwarded.
var hopByHopHeaders = map[string]struct{}{
	"Connection":          {},
	"Keep-Alive":          {},
	"Proxy-Authenticate":  {},
	"Proxy-Authorization": {},
	"Te":                  {},
	"Trailers":            {},
	"Transfer-Encoding":   {},
	"Upgrade":             {},
}

// ProxyHTTP handles /gateway/*: resolves the endpoint to its microservice,
// forwards the request verbatim, and relays the response. PDF bodies are
// passed through with an inline disposition; everything else comes back as
// the upstream's JSON.
func (s *Server) ProxyHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	path := "/" + chi.URLParam(r, "*")

	if _, err := s.Store.EndpointByURL(ctx, path); err != nil {
		if errors.Is(err, store.ErrEndpointNotFound) {
			writeError(w, http.StatusNotFound, "The requested endpoint was not found.")
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("path", path).Msg("endpoint lookup failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	baseURL, err := s.Store.MicroserviceBaseURL(ctx, path)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("path", path).Msg("microservice resolution failed")
		writeError(w, http.StatusBadGateway, "No microservices available for this endpoint.")
		return
	}

	target := strings.TrimSuffix(baseURL, "/") + path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	upReq, err := http.NewRequestWithContext(ctx, r.Method, target, r.Body)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("target", target).Msg("upstream request build failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	copyForwardHeaders(upReq.Header, r.Header)

	resp, err := s.Upstream.Do(upReq)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("target", target).Msg("upstream call failed")
		writeError(w, http.StatusServiceUnavailable,
			"The service is not available, please contact the support area.")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("target", target).Msg("upstream body read failed")
		writeError(w, http.StatusServiceUnavailable,
			"The service is not available, please contact the support area.")
		return
	}

	s.auditMovement(r, path, baseURL, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		writeJSON(w, resp.StatusCode, map[string]any{"detail": upstreamDetail(body)})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/pdf") {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `inline; filename=documento_oficial.pdf`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("pdf relay write failed")
		}
		return
	}

	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("response relay write failed")
	}
}

// upstreamDetail extracts the upstream's own detail when the body is the
// conventional {"detail": ...} JSON error, falling back to a fixed label.
func upstreamDetail(body []byte) any {
	var parsed struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != nil {
		return parsed.Detail
	}
	return "Unknown error"
}

// auditMovement writes a historical_movements row for the proxied call.
// Audit failures are logged, never surfaced to the client.
func (s *Server) auditMovement(r *http.Request, path, baseURL string, status int) {
	ctx := r.Context()

	var userID *int64
	if claims := Claims(ctx); claims != nil {
		if raw, ok := claims["id"].(float64); ok {
			id := int64(raw)
			userID = &id
		}
	}

	m := store.Movement{
		UserID:    userID,
		URL:       path,
		Method:    r.Method,
		System:    baseURL,
		ClientIP:  peerIP(r),
		UserAgent: r.UserAgent(),
		Query:     r.URL.RawQuery,
		Details:   http.StatusText(status),
	}
	if err := s.Store.RecordMovement(ctx, m); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("movement audit failed")
	}
}

// copyForwardHeaders copies request headers minus hop-by-hop fields.
func copyForwardHeaders(dst, src http.Header) {
	for name, values := range src {
		if _, hop := hopByHopHeaders[http.CanonicalHeaderKey(name)]; hop {
			continue
		}
		for _, v := range values {
			dst.Add(name, v)
		}
	}
}
