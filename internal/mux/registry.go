package mux

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"headsuppoker-server/pkg/poker/headsup"
)

// gameEntry pairs an engine instance with its lock and its websocket
// subscribers. The engine is not safe for concurrent use; every call on it
// from the HTTP layer must hold mu.
type gameEntry struct {
	mu      sync.Mutex
	game    *headsup.Game
	sockets *socketHub
}

// registry is the lookup table of active games, keyed by game id
type registry struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*gameEntry
}

func newRegistry() *registry {
	return &registry{
		games: make(map[uuid.UUID]*gameEntry),
	}
}

func (r *registry) add(game *headsup.Game) *gameEntry {
	entry := &gameEntry{
		game:    game,
		sockets: newSocketHub(),
	}

	r.mu.Lock()
	r.games[game.ID()] = entry
	r.mu.Unlock()

	return entry
}

func (r *registry) get(id string) (*gameEntry, bool) {
	gameID, err := uuid.Parse(strings.ToLower(id))
	if err != nil {
		return nil, false
	}

	r.mu.RLock()
	entry, ok := r.games[gameID]
	r.mu.RUnlock()

	return entry, ok
}
