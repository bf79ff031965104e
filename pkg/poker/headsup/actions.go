package headsup

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"headsuppoker-server/pkg/poker/action"
)

// SubmitAction performs a player action and returns a message suitable for
// the caller. Failures are reported with no state change.
func (g *Game) SubmitAction(playerID uuid.UUID, act action.Action, amount int) (string, error) {
	switch g.round {
	case RoundWaiting:
		return "", ErrHandNotStarted
	case RoundGameOver:
		return "", ErrHandOver
	}

	player, err := g.Player(playerID)
	if err != nil {
		return "", err
	}

	if g.players[g.currentPlayerIndex].ID != playerID {
		return "", ErrNotYourTurn
	}

	var message string
	switch act {
	case action.Fold:
		player.fold()
		g.actedCount++
		message = "Player folded"

	case action.Call:
		shortfall := g.currentBet - player.roundBet
		if err := player.placeBet(shortfall); err != nil {
			return "", err
		}

		g.pot += shortfall
		g.actedCount++
		message = "Call successful"

	case action.Raise:
		if amount < 0 {
			return "", errors.New("invalid raise amount")
		}

		if amount < g.currentBet*2 {
			return "", errors.New("raise must be at least double the current bet")
		}

		if err := player.placeBet(amount); err != nil {
			return "", err
		}

		g.pot += amount
		g.currentBet = amount

		// the raise opens a new wagering sub-round and is its first action
		g.actedCount = 1
		message = "Raise successful"

	default:
		return "", fmt.Errorf("invalid action: %s", act)
	}

	g.lastAction = &lastAction{
		PlayerID: playerID,
		Action:   act,
		Amount:   amount,
	}

	g.logger.WithFields(logrus.Fields{
		"playerId": playerID,
		"round":    g.round.String(),
		"pot":      g.pot,
	}).Infof("%s %s", player.Name, act.LogMessage(amount))

	if err := g.nextTurn(); err != nil {
		return "", err
	}

	return message, nil
}

// nextTurn alternates the turn between the two seats, then checks whether
// the betting round is complete
func (g *Game) nextTurn() error {
	g.currentPlayerIndex ^= 1

	// a fold ends the hand immediately, regardless of bet parity
	if g.players[0].folded || g.players[1].folded {
		return g.resolveWinner()
	}

	betsAreEqual := g.players[0].roundBet == g.players[1].roundBet
	if betsAreEqual && g.actedCount >= 2 {
		return g.advanceRound()
	}

	return nil
}

// advanceRound moves to the next betting round, dealing community cards as
// required. Reaching the showdown resolves the winner immediately.
func (g *Game) advanceRound() error {
	g.round++
	g.currentBet = 0
	g.actedCount = 0
	g.lastAction = nil
	for _, p := range g.players {
		p.newRound()
	}

	switch g.round {
	case RoundFlop:
		return g.dealCommunity(3)
	case RoundTurn, RoundRiver:
		return g.dealCommunity(1)
	case RoundShowdown:
		return g.resolveWinner()
	}

	return fmt.Errorf("cannot advance to round %s", g.round)
}

func (g *Game) dealCommunity(count int) error {
	for i := 0; i < count; i++ {
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}

		g.community.AddCard(card)
	}

	return nil
}
