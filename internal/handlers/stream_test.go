package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
)

func TestStream_SendsSceneAndCounters(t *testing.T) {
	app := newTestApp(t)
	app.startGame()
	server := httptest.NewServer(app.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/stream", nil)
	req.AddCookie(app.cookie)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /stream: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type %q", ct)
	}

	seen := map[string]bool{}
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() && !seen["event: counter-3"] {
		line := scanner.Text()
		if strings.HasPrefix(line, "event: ") {
			seen[line] = true
		}
	}
	for _, want := range []string{"event: scene", "event: counter-0", "event: counter-3"} {
		if !seen[want] {
			t.Errorf("stream missing %q", want)
		}
	}
}

func TestStream_RequiresTable(t *testing.T) {
	app := newTestApp(t)
	rec := app.do(http.MethodGet, "/stream", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", rec.Code)
	}
}

func TestWebsocket_CommandsAndFrames(t *testing.T) {
	app := newTestApp(t)
	app.startGame()
	server := httptest.NewServer(app.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{
		HTTPHeader: http.Header{"Cookie": {tableCookieName + "=" + app.cookie.Value}},
	})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	read := func() serverMessage {
		t.Helper()
		_, data, err := conn.Read(ctx)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		var msg serverMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		return msg
	}

	if msg := read(); msg.Type != "Scene" || msg.Scene != "Home" {
		t.Fatalf("first message %+v, want Home scene", msg)
	}
	for i := 0; i < 4; i++ {
		if msg := read(); msg.Type != "Counter" {
			t.Fatalf("message %d %+v, want Counter", i, msg)
		}
	}

	if err := conn.Write(ctx, websocket.MessageText, []byte(`{"type":"Increment","id":1}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if msg := read(); msg.Type != "Haptic" || msg.Style != "heavy" {
		t.Fatalf("message %+v, want heavy haptic", msg)
	}
	deadline := time.Now().Add(2 * time.Second)
	for app.table().Snapshot().Players[1].Life != 41 {
		if time.Now().After(deadline) {
			t.Fatalf("Life %d, want 41", app.table().Snapshot().Players[1].Life)
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := conn.Write(ctx, websocket.MessageText, []byte(`not json`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if msg := read(); msg.Type != "Error" || msg.Error != "bad json" {
		t.Errorf("message %+v, want bad json error", msg)
	}
}
