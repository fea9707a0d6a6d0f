package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	roundService "github.com/fairwaylabs/pressbook/internal/services/round"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
	wsSendBuffer = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API serves browsers on other origins; auth is the token.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleRoundSocket upgrades the connection and streams round updates.
// Browsers cannot set headers on websocket dials, so the bearer token
// rides in the token query parameter.
func (h *Handler) handleRoundSocket(w http.ResponseWriter, r *http.Request) {
	userID, err := h.auth.VerifyToken(r.URL.Query().Get("token"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	roundID := chi.URLParam(r, "id")
	_, err = h.roundService.GetRound(r.Context(), &roundService.GetRoundInput{
		RoundID: roundID,
		OwnerID: userID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "round_id", roundID, "error", err)
		return
	}

	client := &hubClient{
		roundID: roundID,
		send:    make(chan []byte, wsSendBuffer),
	}
	h.hub.register <- client

	go h.writePump(conn, client)
	go h.readPump(conn, client)
}

// writePump drains the client's send channel onto the connection
func (h *Handler) writePump(conn *websocket.Conn, client *hubClient) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case data, ok := <-client.send:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames and unregisters on disconnect
func (h *Handler) readPump(conn *websocket.Conn, client *hubClient) {
	defer func() {
		h.hub.unregister <- client
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
