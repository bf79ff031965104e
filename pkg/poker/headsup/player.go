package headsup

import (
	"errors"

	"github.com/google/uuid"

	"headsuppoker-server/pkg/deck"
)

// ErrNotEnoughChips is an error when a bet exceeds the player's chip balance
var ErrNotEnoughChips = errors.New("not enough chips")

// Player is a seat at the table.
// Chips persist across hands; the hole cards, per-round bet, per-hand bet,
// and folded flag reset every hand.
type Player struct {
	ID   uuid.UUID
	Name string

	chips    int
	hand     deck.Hand
	roundBet int
	handBet  int
	folded   bool
	ready    bool
}

// NewPlayer returns a player seated with the provided chip count
func NewPlayer(id uuid.UUID, name string, chips int) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		chips: chips,
		hand:  make(deck.Hand, 0, 2),
	}
}

// Chips returns the player's chip balance
func (p *Player) Chips() int {
	return p.chips
}

// Hand returns the player's hole cards
func (p *Player) Hand() deck.Hand {
	return p.hand
}

// RoundBet returns the amount committed in the current betting round
func (p *Player) RoundBet() int {
	return p.roundBet
}

// Folded returns true if the player folded this hand
func (p *Player) Folded() bool {
	return p.folded
}

// Ready returns true if the player is ready to start a hand
func (p *Player) Ready() bool {
	return p.ready
}

// placeBet commits amount chips. A bet exceeding the balance is rejected,
// never clamped.
func (p *Player) placeBet(amount int) error {
	if amount > p.chips {
		return ErrNotEnoughChips
	}

	p.chips -= amount
	p.roundBet += amount
	p.handBet += amount
	return nil
}

func (p *Player) fold() {
	p.folded = true
}

// newRound clears the per-round committed bet
func (p *Player) newRound() {
	p.roundBet = 0
}

// resetHand prepares the player for a fresh deal
func (p *Player) resetHand() {
	p.hand = make(deck.Hand, 0, 2)
	p.roundBet = 0
	p.handBet = 0
	p.folded = false
}
