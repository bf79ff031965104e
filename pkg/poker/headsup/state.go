package headsup

import (
	"github.com/google/uuid"

	"headsuppoker-server/pkg/deck"
	"headsuppoker-server/pkg/poker/action"
)

// BlindState describes a posted blind
type BlindState struct {
	Amount int    `json:"amount"`
	Player string `json:"player"`
}

// SeatState identifies a seated player without revealing their cards
type SeatState struct {
	Name  string    `json:"name"`
	ID    uuid.UUID `json:"id"`
	Index int       `json:"index"`
}

// ActionState describes the most recent action of the current betting round
type ActionState struct {
	Player string        `json:"player"`
	Action action.Action `json:"action"`
	Amount int           `json:"amount"`
}

// WinnerState describes the winner of a completed hand
type WinnerState struct {
	Name  string    `json:"name"`
	ID    uuid.UUID `json:"id"`
	Chips int       `json:"chips"`
}

// State is the view-dependent projection returned to a player.
// While a hand is live the viewer sees only their own hole cards; after the
// hand ends both hands, the winner, and the final board are included for
// every viewer.
type State struct {
	GameID             uuid.UUID     `json:"gameId"`
	Pot                int           `json:"pot"`
	SmallBlind         BlindState    `json:"smallBlind"`
	BigBlind           BlindState    `json:"bigBlind"`
	CommunityCards     deck.Hand     `json:"communityCards"`
	CurrentBet         int           `json:"currentBet"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
	CurrentPlayerName  string        `json:"currentPlayerName"`
	Players            []SeatState   `json:"players"`
	Round              Round         `json:"gameState"`
	ReadyPlayers       int           `json:"readyPlayers"`
	TotalPlayers       int           `json:"totalPlayers"`
	RoundHistory       []RoundResult `json:"roundHistory"`
	LastAction         *ActionState  `json:"lastAction,omitempty"`
	IsGameOver         bool          `json:"isGameOver"`

	// live hand, viewer only
	PlayerHand  deck.Hand `json:"playerHand,omitempty"`
	PlayerChips *int      `json:"playerChips,omitempty"`

	// populated once the hand is over
	Winner              *WinnerState `json:"winner,omitempty"`
	SplitPot            bool         `json:"splitPot,omitempty"`
	WinningHand         string       `json:"winningHand,omitempty"`
	HandDescription     string       `json:"handDescription,omitempty"`
	FinalCommunityCards deck.Hand    `json:"finalCommunityCards,omitempty"`
	AllHands            []FinalHand  `json:"allHands,omitempty"`
	FinalPot            int          `json:"finalPot,omitempty"`
}

// PublicState returns the projection of the game for the given viewer
func (g *Game) PublicState(viewerID uuid.UUID) (*State, error) {
	viewer, err := g.Player(viewerID)
	if err != nil {
		return nil, err
	}

	seats := make([]SeatState, len(g.players))
	for i, p := range g.players {
		seats[i] = SeatState{
			Name:  p.Name,
			ID:    p.ID,
			Index: i,
		}
	}

	state := &State{
		GameID:             g.id,
		Pot:                g.pot,
		SmallBlind:         BlindState{Amount: g.options.SmallBlind, Player: g.playerName(0)},
		BigBlind:           BlindState{Amount: g.options.BigBlind, Player: g.playerName(1)},
		CommunityCards:     g.community,
		CurrentBet:         g.currentBet,
		CurrentPlayerIndex: g.currentPlayerIndex,
		CurrentPlayerName:  g.playerName(g.currentPlayerIndex),
		Players:            seats,
		Round:              g.round,
		ReadyPlayers:       g.ReadyCount(),
		TotalPlayers:       len(g.players),
		RoundHistory:       g.history,
	}

	if g.lastAction != nil {
		name := "Unknown"
		if p, err := g.Player(g.lastAction.PlayerID); err == nil {
			name = p.Name
		}

		state.LastAction = &ActionState{
			Player: name,
			Action: g.lastAction.Action,
			Amount: g.lastAction.Amount,
		}
	}

	if g.round == RoundGameOver {
		state.IsGameOver = true
		state.SplitPot = g.splitPot
		state.WinningHand = g.winningHand
		state.HandDescription = g.handDescription
		state.FinalCommunityCards = g.finalCommunity
		state.AllHands = g.finalHands
		state.FinalPot = g.finalPot

		if g.winner != nil {
			state.Winner = &WinnerState{
				Name:  g.winner.Name,
				ID:    g.winner.ID,
				Chips: g.winner.chips,
			}
		}

		return state, nil
	}

	chips := viewer.chips
	state.PlayerHand = viewer.hand
	state.PlayerChips = &chips

	return state, nil
}

func (g *Game) playerName(index int) string {
	if index < len(g.players) {
		return g.players[index].Name
	}

	return "Unknown"
}
