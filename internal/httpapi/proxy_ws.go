package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/sisgate/gateway-api/internal/store"
)

// wsReadTimeout caps how long the splice waits for a frame from the
// upstream before the session is torn down.
const wsReadTimeout = 10 * time.Second

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Cross-origin policy is enforced at the CORS layer, not per socket.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ProxyWS handles /ws/*: resolves the endpoint like the HTTP proxy, then
// upgrades the client connection and splices frames bidirectionally with
// the upstream socket. The session ends when either side closes or the
// upstream goes silent past the read timeout.
func (s *Server) ProxyWS(w http.ResponseWriter, r *http.Request) {
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

	target := toWebSocketURL(strings.TrimSuffix(baseURL, "/")) + path

	upstream, resp, err := websocket.DefaultDialer.DialContext(ctx, target, nil)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("target", target).Msg("upstream websocket dial failed")
		writeError(w, http.StatusServiceUnavailable,
			"The service is not available, please contact the support area.")
		return
	}
	if resp != nil {
		resp.Body.Close()
	}
	defer upstream.Close()

	client, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written its own error response.
		log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("client websocket upgrade failed")
		return
	}
	defer client.Close()

	log.Ctx(ctx).Info().Str("path", path).Str("target", target).Msg("websocket session opened")

	done := make(chan struct{}, 2)

	go func() {
		defer func() { done <- struct{}{} }()
		for {
			msgType, data, err := client.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Ctx(ctx).Warn().Err(err).Msg("client socket closed abnormally")
				}
				return
			}
			if err := upstream.WriteMessage(msgType, data); err != nil {
				log.Ctx(ctx).Warn().Err(err).Msg("upstream write failed")
				return
			}
		}
	}()

	go func() {
		defer func() { done <- struct{}{} }()
		for {
			if err := upstream.SetReadDeadline(time.Now().Add(wsReadTimeout)); err != nil {
				return
			}
			msgType, data, err := upstream.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Ctx(ctx).Warn().Err(err).Msg("upstream socket closed abnormally")
				}
				return
			}
			if err := client.WriteMessage(msgType, data); err != nil {
				log.Ctx(ctx).Warn().Err(err).Msg("client write failed")
				return
			}
		}
	}()

	// First pump to exit ends the session; the deferred closes unblock the
	// other pump's pending read.
	<-done

	log.Ctx(ctx).Info().Str("path", path).Msg("websocket session closed")
}
