package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sisgate/gateway-api/internal/store"
	"github.com/sisgate/gateway-api/internal/store/storetest"
)

func TestProxyWSSplicesFrames(t *testing.T) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upstream upgrade: %v", err)
			return
		}
		defer conn.Close()
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(msgType, append([]byte("echo:"), data...)); err != nil {
				return
			}
		}
	}))
	defer upstream.Close()

	fake := storetest.New()
	fake.Endpoints["/live/feed"] = &store.Endpoint{URL: "/live/feed", Authenticated: false}
	fake.BaseURLs["/live/feed"] = []string{upstream.URL}

	s := newTestServer(t, fake)
	gw := httptest.NewServer(s.Routes())
	defer gw.Close()

	wsURL := "ws" + strings.TrimPrefix(gw.URL, "http") + "/ws/live/feed"
	client, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial gateway websocket: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	defer client.Close()

	if err := client.WriteMessage(websocket.TextMessage, []byte("ping")); err != nil {
		t.Fatalf("client write: %v", err)
	}

	client.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("client read: %v", err)
	}
	if string(data) != "echo:ping" {
		t.Fatalf("spliced payload = %q, want echo:ping", data)
	}
}

func TestProxyWSUnknownEndpointIs404BeforeUpgrade(t *testing.T) {
	s := newTestServer(t, storetest.New())
	gw := httptest.NewServer(s.Routes())
	defer gw.Close()

	resp, err := http.Get(gw.URL + "/ws/no/such/feed")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestProxyWSNoMicroserviceIs502(t *testing.T) {
	fake := storetest.New()
	fake.Endpoints["/live/feed"] = &store.Endpoint{URL: "/live/feed", Authenticated: false}

	s := newTestServer(t, fake)
	gw := httptest.NewServer(s.Routes())
	defer gw.Close()

	resp, err := http.Get(gw.URL + "/ws/live/feed")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
}
