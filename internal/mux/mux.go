package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"

	"headsuppoker-server/pkg/poker/headsup"
)

type ctxKey int

const ctxGameKey ctxKey = iota

const uuidPattern = `(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}`

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	options headsup.Options
	games   *registry
}

// NewMux returns a new HTTP mux
func NewMux(version string, options headsup.Options) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		options: options,
		games:   newRegistry(),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/api/game").Handler(this.postGame())

	gr := r.PathPrefix("/api/game/{uuid:" + uuidPattern + "}").Subrouter()
	gr.Use(this.gameMiddleware)

	gr.Methods(http.MethodPost).Path("/join").Handler(this.postJoin())
	gr.Methods(http.MethodPost).Path("/ready/{playerId:" + uuidPattern + "}").Handler(this.postReady())
	gr.Methods(http.MethodGet).Path("/state/{playerId:" + uuidPattern + "}").Handler(this.getState())
	gr.Methods(http.MethodPost).Path("/move/{playerId:" + uuidPattern + "}").Handler(this.postMove())
	gr.Methods(http.MethodPost).Path("/start").Handler(this.postStart())
	gr.Methods(http.MethodPost).Path("/new-hand").Handler(this.postNewHand())
	gr.Methods(http.MethodGet).Path("/ws/{playerId:" + uuidPattern + "}").Handler(this.getGameWS())

	return this
}

// gameMiddleware resolves the game from the request path
func (m *Mux) gameMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry, ok := m.games.get(gmux.Vars(r)["uuid"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, errNoGameInProgress)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxGameKey, entry)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func entryFromRequest(r *http.Request) *gameEntry {
	return r.Context().Value(ctxGameKey).(*gameEntry)
}

func (m *Mux) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			Status  string `json:"status"`
			Version string `json:"version"`
		}{
			Status:  "OK",
			Version: m.version,
		})
	}
}
