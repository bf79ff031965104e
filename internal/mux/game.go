package mux

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"headsuppoker-server/pkg/poker/action"
	"headsuppoker-server/pkg/poker/headsup"
)

func playerIDFromRequest(r *http.Request) uuid.UUID {
	// the route pattern guarantees a well-formed uuid
	return uuid.MustParse(strings.ToLower(gmux.Vars(r)["playerId"]))
}

// gameErrorStatus maps an engine failure to an HTTP status code
func gameErrorStatus(err error) int {
	if errors.Is(err, headsup.ErrPlayerNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, err := headsup.NewGame(logrus.StandardLogger(), m.options)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		m.games.add(game)

		writeJSON(w, http.StatusCreated, struct {
			GameID  uuid.UUID `json:"gameId"`
			Message string    `json:"message"`
		}{
			GameID:  game.ID(),
			Message: "New game created. Players can now join.",
		})
	}
}

func (m *Mux) postJoin() http.HandlerFunc {
	type payload struct {
		PlayerName string `json:"playerName"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		if p.PlayerName == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("Player name is required"))
			return
		}

		entry := entryFromRequest(r)
		player := headsup.NewPlayer(uuid.New(), p.PlayerName, m.options.StartingChips)

		entry.mu.Lock()
		err := entry.game.AddPlayer(player)
		entry.mu.Unlock()

		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, struct {
			PlayerID uuid.UUID `json:"playerId"`
			GameID   uuid.UUID `json:"gameId"`
			Message  string    `json:"message"`
		}{
			PlayerID: player.ID,
			GameID:   entry.game.ID(),
			Message:  "Successfully joined the game. Use /ready endpoint when you're ready to play.",
		})
	}
}

func (m *Mux) postReady() http.HandlerFunc {
	type response struct {
		Message         string         `json:"message"`
		ReadyCount      int            `json:"readyCount,omitempty"`
		RequiredPlayers int            `json:"requiredPlayers,omitempty"`
		GameState       *headsup.State `json:"gameState,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		playerID := playerIDFromRequest(r)
		entry := entryFromRequest(r)

		entry.mu.Lock()
		defer entry.mu.Unlock()

		game := entry.game
		if err := game.MarkReady(playerID); err != nil {
			writeJSONError(w, gameErrorStatus(err), err)
			return
		}

		if game.PlayerCount() == 2 && game.ReadyCount() == 2 {
			if err := game.StartHand(); err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			state, err := game.PublicState(playerID)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}

			entry.sockets.broadcast(game)
			writeJSON(w, http.StatusOK, response{
				Message:   "All players ready! Game starting...",
				GameState: state,
			})
			return
		}

		message := "You're ready! Waiting for other player to be ready..."
		if game.PlayerCount() < 2 {
			message = "You're ready! Waiting for another player to join..."
		}

		writeJSON(w, http.StatusOK, response{
			Message:         message,
			ReadyCount:      game.ReadyCount(),
			RequiredPlayers: 2,
		})
	}
}

func (m *Mux) getState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := playerIDFromRequest(r)
		entry := entryFromRequest(r)

		entry.mu.Lock()
		state, err := entry.game.PublicState(playerID)
		entry.mu.Unlock()

		if err != nil {
			writeJSONError(w, gameErrorStatus(err), err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) postMove() http.HandlerFunc {
	type payload struct {
		Action string `json:"action"`
		Amount int    `json:"amount"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		act, err := action.FromString(p.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		playerID := playerIDFromRequest(r)
		entry := entryFromRequest(r)

		entry.mu.Lock()
		defer entry.mu.Unlock()

		message, err := entry.game.SubmitAction(playerID, act, p.Amount)
		if err != nil {
			writeJSONError(w, gameErrorStatus(err), err)
			return
		}

		state, err := entry.game.PublicState(playerID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		entry.sockets.broadcast(entry.game)
		writeJSON(w, http.StatusOK, struct {
			Message   string         `json:"message"`
			GameState *headsup.State `json:"gameState"`
		}{
			Message:   message,
			GameState: state,
		})
	}
}

func (m *Mux) postStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry := entryFromRequest(r)

		entry.mu.Lock()
		defer entry.mu.Unlock()

		if err := entry.game.StartHand(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		entry.sockets.broadcast(entry.game)
		writeJSON(w, http.StatusOK, struct {
			Message string `json:"message"`
		}{
			Message: "Game started successfully",
		})
	}
}

func (m *Mux) postNewHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry := entryFromRequest(r)

		entry.mu.Lock()
		entry.game.ResetForNewHand()
		entry.sockets.broadcast(entry.game)
		entry.mu.Unlock()

		writeJSON(w, http.StatusOK, struct {
			Message string `json:"message"`
		}{
			Message: "New hand ready. Players can mark ready to play.",
		})
	}
}
