package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"strata-be-svc/internal/auth"

	"github.com/gorilla/websocket"
)

func dialStream(t *testing.T, srv *httptest.Server, token string) (*websocket.Conn, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/auth/stream?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	return conn, err
}

func readEvent(t *testing.T, conn *websocket.Conn) auth.Event {
	t.Helper()
	var ev auth.Event
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read event: %v", err)
	}
	return ev
}

func TestStreamSendsCurrentThenEvents(t *testing.T) {
	ts := newTestServer()
	srv := httptest.NewServer(ts.router)
	defer srv.Close()

	conn, err := dialStream(t, srv, memberToken)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	first := readEvent(t, conn)
	if first.Type != auth.EventCurrent || first.IdentityID != "m1" {
		t.Fatalf("expected current snapshot for m1, got %+v", first)
	}

	ts.auth.notifier.Publish(auth.Event{Type: auth.EventStatusChanged, IdentityID: "m1", Status: "approved"})
	ts.auth.notifier.Publish(auth.Event{Type: auth.EventSignedIn, IdentityID: "someone-else"})
	ts.auth.notifier.Publish(auth.Event{Type: auth.EventSignedOut, IdentityID: "m1"})

	if ev := readEvent(t, conn); ev.Type != auth.EventStatusChanged || ev.Status != "approved" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev := readEvent(t, conn); ev.Type != auth.EventSignedOut {
		t.Fatalf("events of other identities must not be delivered, got %+v", ev)
	}

	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for ts.auth.notifier.Subscribers("m1") != 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscription was not released after the connection closed")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStreamRejectsMissingToken(t *testing.T) {
	ts := newTestServer()
	srv := httptest.NewServer(ts.router)
	defer srv.Close()

	if _, err := dialStream(t, srv, ""); err == nil {
		t.Fatal("expected the upgrade to be refused")
	}
}

func TestStreamChecksOrigin(t *testing.T) {
	ts := newTestServer("https://portal.example.com")
	srv := httptest.NewServer(ts.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/auth/stream?token=" + memberToken

	tests := []struct {
		name   string
		origin string
		ok     bool
	}{
		{"allowed origin", "https://portal.example.com", true},
		{"no origin", "", true},
		{"foreign origin", "https://evil.example.net", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}
			conn, resp, err := websocket.DefaultDialer.Dial(url, header)
			if !tt.ok {
				if err == nil {
					conn.Close()
					t.Fatal("expected the upgrade to be refused")
				}
				if resp == nil || resp.StatusCode != http.StatusForbidden {
					t.Fatalf("expected 403, got %v", resp)
				}
				return
			}
			if err != nil {
				t.Fatalf("dial: %v", err)
			}
			defer conn.Close()
			if ev := readEvent(t, conn); ev.Type != auth.EventCurrent {
				t.Fatalf("expected current snapshot, got %+v", ev)
			}
		})
	}
}
