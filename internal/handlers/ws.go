package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"lifecounter/internal/game"
	"lifecounter/internal/session"
)

// clientMessage is a command sent by a websocket client.
type clientMessage struct {
	Type string `json:"type"`
	ID   int    `json:"id"`
}

// serverMessage is pushed to websocket clients.
type serverMessage struct {
	Type    string          `json:"type"`
	Counter *counterPayload `json:"counter,omitempty"`
	Scene   string          `json:"scene,omitempty"`
	Style   string          `json:"style,omitempty"`
	Theme   string          `json:"theme,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type counterPayload struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Life      int    `json:"life"`
	Displayed int    `json:"displayed"`
	Indicator string `json:"indicator"`
	Pulse     int    `json:"pulse"`
}

func (h *GameHandler) socket(w http.ResponseWriter, r *http.Request) {
	table, ok := existingTable(r, h.store)
	if !ok {
		http.NotFound(w, r)
		return
	}

	hub := h.store.Broadcaster(table.ID)
	if hub == nil {
		http.NotFound(w, r)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	writeCtx, writeCancel := context.WithCancel(r.Context())
	defer writeCancel()

	send := func(msg serverMessage) {
		payload, _ := json.Marshal(msg)
		ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
		_ = conn.Write(ctx, websocket.MessageText, payload)
		cancel()
	}

	send(serverMessage{Type: "Scene", Scene: string(table.Scene())})
	for _, frame := range table.Snapshot().Counters {
		send(counterMessage(table, frame.PlayerID))
	}

	// Writer goroutine
	go func() {
		for {
			select {
			case <-writeCtx.Done():
				return
			case event, ok := <-sub:
				if !ok {
					return
				}
				switch event {
				case game.EventScene:
					send(serverMessage{Type: "Scene", Scene: string(table.Scene())})
				case game.EventHaptic:
					send(serverMessage{Type: "Haptic", Style: "heavy"})
				case game.EventTheme:
					send(serverMessage{Type: "Theme", Theme: string(h.theme.Mode())})
				default:
					if id, ok := game.ParseCounterEvent(event); ok {
						send(counterMessage(table, id))
					}
				}
			}
		}
	}()

	// Reader loop
	for {
		_, data, err := conn.Read(r.Context())
		if err != nil {
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			send(serverMessage{Type: "Error", Error: "bad json"})
			continue
		}
		if err := applyClientMessage(table, msg); err != nil {
			send(serverMessage{Type: "Error", Error: err.Error()})
		}
	}
}

var errUnknownMessage = errors.New("unknown type")

func applyClientMessage(table *game.Table, msg clientMessage) error {
	switch msg.Type {
	case "Increment":
		return table.Press(session.Increment{ID: msg.ID})
	case "Decrement":
		return table.Press(session.Decrement{ID: msg.ID})
	case "Reset":
		return table.Reset()
	default:
		return errUnknownMessage
	}
}

func counterMessage(table *game.Table, id int) serverMessage {
	frame, ok := table.Counter(id)
	if !ok {
		return serverMessage{Type: "Error", Error: "unknown player"}
	}
	return serverMessage{
		Type: "Counter",
		Counter: &counterPayload{
			ID:        frame.PlayerID,
			Name:      frame.Name,
			Life:      frame.Life,
			Displayed: frame.Displayed,
			Indicator: frame.Indicator,
			Pulse:     frame.Pulse,
		},
	}
}
