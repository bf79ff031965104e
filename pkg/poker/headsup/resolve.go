package headsup

import (
	"github.com/sirupsen/logrus"

	"headsuppoker-server/pkg/deck"
	"headsuppoker-server/pkg/poker/handrank"
)

// resolveWinner ends the hand: it either awards the pot to the last player
// standing, or evaluates both hands over the community cards and awards the
// pot to the stronger one. An exact tie splits the pot, with the odd chip
// going to seat 0.
func (g *Game) resolveWinner() error {
	p0, p1 := g.players[0], g.players[1]

	switch {
	case p0.folded:
		g.awardPot(p1, nil, "Opponent folded")
	case p1.folded:
		g.awardPot(p0, nil, "Opponent folded")
	default:
		r0 := handrank.Evaluate(p0.hand, g.community)
		r1 := handrank.Evaluate(p1.hand, g.community)

		switch cmp := r0.Compare(r1); {
		case cmp > 0:
			g.awardPot(p0, r0, r0.Description)
		case cmp < 0:
			g.awardPot(p1, r1, r1.Description)
		default:
			g.splitPotBetweenPlayers(r0)
		}
	}

	return nil
}

// awardPot credits the full pot to the winner and archives the hand
func (g *Game) awardPot(winner *Player, result *handrank.Result, description string) {
	g.archiveHand()

	deltas := make([]int, len(g.players))
	for i, p := range g.players {
		if p == winner {
			deltas[i] = g.pot
		} else {
			deltas[i] = -p.handBet
		}
	}

	g.history = append(g.history, RoundResult{
		Number:  len(g.history) + 1,
		Results: deltas,
	})

	winner.chips += g.pot

	g.winner = winner
	if result != nil {
		g.winningHand = result.Category.String()
	}
	g.handDescription = description

	g.logger.WithFields(logrus.Fields{
		"winnerId": winner.ID,
		"pot":      g.finalPot,
		"hand":     g.winningHand,
	}).Info("hand resolved")

	g.endHand()
}

// splitPotBetweenPlayers divides the pot on an exact tie. The odd chip goes
// to seat 0.
func (g *Game) splitPotBetweenPlayers(result *handrank.Result) {
	g.archiveHand()

	share := g.pot / 2
	shares := []int{share + g.pot%2, share}

	deltas := make([]int, len(g.players))
	for i, p := range g.players {
		deltas[i] = shares[i] - p.handBet
		p.chips += shares[i]
	}

	g.history = append(g.history, RoundResult{
		Number:  len(g.history) + 1,
		Results: deltas,
	})

	g.splitPot = true
	g.winningHand = result.Category.String()
	g.handDescription = "Split pot: " + result.Description

	g.logger.WithFields(logrus.Fields{
		"pot":  g.finalPot,
		"hand": g.winningHand,
	}).Info("hand resolved as a split pot")

	g.endHand()
}

// archiveHand retains the completed hand's pot, hole cards, and community
// cards so callers can render the showdown after the pot is zeroed
func (g *Game) archiveHand() {
	g.finalHands = make([]FinalHand, len(g.players))
	for i, p := range g.players {
		g.finalHands[i] = FinalHand{
			ID:    p.ID,
			Name:  p.Name,
			Hand:  p.hand.Clone(),
			Chips: p.chips,
		}
	}

	g.finalCommunity = g.community.Clone()
	g.finalPot = g.pot
}

// endHand zeroes the pot and clears the table for the next deal
func (g *Game) endHand() {
	g.pot = 0
	g.round = RoundGameOver
	g.community = make(deck.Hand, 0, 5)
	for _, p := range g.players {
		p.resetHand()
	}
}
