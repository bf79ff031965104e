package mux

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"headsuppoker-server/pkg/poker/action"
	"headsuppoker-server/pkg/poker/headsup"
)

func dialGameWS(t *testing.T, ts *httptest.Server, base string, playerID uuid.UUID) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(fmt.Sprintf("%s%s/ws/%s", wsURL, base, playerID), nil)
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func readStateFrame(t *testing.T, conn *websocket.Conn) *headsup.State {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 5))

	var state headsup.State
	if err := conn.ReadJSON(&state); err != nil {
		t.Fatal(err)
	}

	return &state
}

func Test_getGameWS(t *testing.T) {
	a := assert.New(t)
	ts := newTestServer(t)
	base, alice, bob := createTwoPlayerGame(t, ts)

	aliceConn := dialGameWS(t, ts, base, alice)
	bobConn := dialGameWS(t, ts, base, bob)

	// a snapshot is sent on connect
	a.Equal(headsup.RoundWaiting, readStateFrame(t, aliceConn).Round)
	a.Equal(headsup.RoundWaiting, readStateFrame(t, bobConn).Round)

	assertPost(t, ts, fmt.Sprintf("%s/ready/%s", base, alice), nil, nil, http.StatusOK)
	assertPost(t, ts, fmt.Sprintf("%s/ready/%s", base, bob), nil, nil, http.StatusOK)

	// the auto-start pushes a fresh snapshot to both subscribers
	aliceState := readStateFrame(t, aliceConn)
	bobState := readStateFrame(t, bobConn)
	a.Equal(headsup.RoundPreFlop, aliceState.Round)
	a.Equal(headsup.RoundPreFlop, bobState.Round)

	// each subscriber sees only their own hole cards
	a.Len(aliceState.PlayerHand, 2)
	a.Len(bobState.PlayerHand, 2)
	a.NotEqual(aliceState.PlayerHand.String(), bobState.PlayerHand.String())
	a.Nil(aliceState.AllHands)
	a.Nil(bobState.AllHands)

	assertPost(t, ts, fmt.Sprintf("%s/move/%s", base, alice), map[string]interface{}{"action": "call"}, nil, http.StatusOK)

	// every successful move pushes again
	aliceState = readStateFrame(t, aliceConn)
	bobState = readStateFrame(t, bobConn)
	a.Equal(40, aliceState.Pot)
	a.Equal(40, bobState.Pot)
	if a.NotNil(bobState.LastAction) {
		a.Equal("alice", bobState.LastAction.Player)
		a.Equal(action.Call, bobState.LastAction.Action)
	}

	// a departed subscriber must not block pushes to the other
	_ = bobConn.Close()

	assertPost(t, ts, fmt.Sprintf("%s/move/%s", base, bob), map[string]interface{}{"action": "fold"}, nil, http.StatusOK)

	aliceState = readStateFrame(t, aliceConn)
	a.True(aliceState.IsGameOver)
	a.Equal(2, len(aliceState.AllHands))
}

func Test_getGameWS_unknownPlayer(t *testing.T) {
	ts := newTestServer(t)
	base, _, _ := createTwoPlayerGame(t, ts)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(fmt.Sprintf("%s%s/ws/%s", wsURL, base, uuid.New()), nil)
	assert.Nil(t, conn)
	assert.Equal(t, websocket.ErrBadHandshake, err)
	if assert.NotNil(t, resp) {
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}
}
