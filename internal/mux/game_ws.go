package mux

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"headsuppoker-server/pkg/poker/headsup"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// wsClient is a single websocket subscriber for a game
type wsClient struct {
	conn     *websocket.Conn
	playerID uuid.UUID
	send     chan *headsup.State
}

// socketHub tracks the websocket subscribers of one game and fans out
// state snapshots to them. Each subscriber gets a view scoped to their
// own player, so hole cards never leak to the opponent.
type socketHub struct {
	mu      sync.Mutex
	clients map[*wsClient]struct{}
}

func newSocketHub() *socketHub {
	return &socketHub{
		clients: make(map[*wsClient]struct{}),
	}
}

func (h *socketHub) add(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *socketHub) remove(c *wsClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// broadcast queues a fresh per-viewer snapshot for every subscriber.
// The caller must hold the game entry lock.
func (h *socketHub) broadcast(game *headsup.Game) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		state, err := game.PublicState(c.playerID)
		if err != nil {
			continue
		}

		// drop the snapshot if the client is too far behind; a newer
		// one will follow on the next broadcast
		select {
		case c.send <- state:
		default:
		}
	}
}

func (m *Mux) getGameWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		playerID := playerIDFromRequest(r)
		entry := entryFromRequest(r)

		entry.mu.Lock()
		_, err := entry.game.Player(playerID)
		var state *headsup.State
		if err == nil {
			state, err = entry.game.PublicState(playerID)
		}
		entry.mu.Unlock()

		if err != nil {
			writeJSONError(w, gameErrorStatus(err), err)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		client := &wsClient{
			conn:     conn,
			playerID: playerID,
			send:     make(chan *headsup.State, 8),
		}

		entry.sockets.add(client)
		client.send <- state

		defer func() {
			entry.sockets.remove(client)
			_ = conn.Close()
		}()

		go webSocketWriteLoop(client)
		webSocketReadLoop(client)
	}
}

func webSocketWriteLoop(client *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case state, ok := <-client.send:
			if !ok {
				return
			}

			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteJSON(state); err != nil {
				logrus.WithError(err).WithField("playerId", client.playerID).Error("could not write state")
				return
			}
		}
	}
}

// webSocketReadLoop drains the connection until the client goes away.
// Inbound frames carry no commands; all moves arrive over the REST API.
func webSocketReadLoop(client *wsClient) {
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).Debug("websocket closed unexpectedly")
			}

			return
		}
	}
}
