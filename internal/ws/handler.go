package ws

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/DoyleJ11/lol-draft-sim/internal/hub"
	"github.com/DoyleJ11/lol-draft-sim/internal/lobby"
	"github.com/DoyleJ11/lol-draft-sim/internal/types"
	"github.com/coder/websocket"
	"go.uber.org/zap"
)

// Handler streams lobby snapshots to a spectator. The feed is read-only:
// anything the client sends is answered with an error message.
func Handler(h *hub.Hub, logger *zap.Logger) http.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		lb := h.Get(code)
		if lb == nil {
			http.Error(w, "lobby not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			logger.Debug("websocket accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan lobby.Snapshot, 8)
		clientID := randID(6)
		log := logger.With(zap.String("lobby", code), zap.String("client", clientID))

		if !lb.Send(lobby.Join{ClientID: clientID, Outbox: out}) {
			conn.Close(websocket.StatusGoingAway, "lobby closed")
			return
		}
		defer lb.Send(lobby.Leave{ClientID: clientID})
		log.Debug("spectator joined")

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// Reader goroutine: only there to notice the client going away.
		go func() {
			defer cancel()
			for {
				_, _, err := conn.Read(ctx)
				if err != nil {
					return
				}
				writeJSON(ctx, conn, types.ServerMessage{Type: types.MsgError, Error: "read-only feed"})
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-out:
				if !ok {
					// lobby closed or dropped us as too slow
					conn.Close(websocket.StatusGoingAway, "feed closed")
					return
				}
				board := snap.Board
				msg := types.ServerMessage{Type: types.MsgStateSnapshot, Version: snap.Version, Board: &board}
				if err := writeJSON(ctx, conn, msg); err != nil {
					log.Debug("spectator write failed", zap.Error(err))
					return
				}
			}
		}
	}
}

func writeJSON(ctx context.Context, conn *websocket.Conn, msg types.ServerMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, payload)
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.IntN(len(charset))]
	}
	return string(b)
}
