package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"art-auction/internal/bus"
)

func TestServeEventsDeliversPublishedEvents(t *testing.T) {
	b := bus.New(16)
	srv := NewServer(b)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.ServeEvents(w, r, "g1")
	}))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()
	if resp != nil {
		resp.Body.Close()
	}

	// The subscription is registered just after the upgrade; publish
	// until a frame arrives.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-time.After(10 * time.Millisecond):
				b.Publish("g1", bus.EventTimerTick, map[string]any{"round": 1})
			}
		}
	}()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev bus.Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if ev.GameID != "g1" || ev.Name != bus.EventTimerTick {
		t.Fatalf("event = %+v", ev)
	}
}

func TestServeEventsStopsOnDisconnect(t *testing.T) {
	b := bus.New(16)
	srv := NewServer(b)

	served := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.ServeEvents(w, r, "g1")
		close(served)
	}))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}

	conn.Close()
	select {
	case <-served:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after client disconnect")
	}
}
