package headsup

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"headsuppoker-server/pkg/deck"
	"headsuppoker-server/pkg/poker/action"
)

// errors reported to callers; every failed operation leaves the game unchanged
var (
	ErrGameFull       = errors.New("game is full")
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrHandOver       = errors.New("the hand is over; reset for a new hand")
	ErrHandInProgress = errors.New("a hand is already in progress")
	ErrHandNotStarted = errors.New("the hand has not started")
)

// RoundResult is the immutable record of a completed hand: the hand number
// and the net chip delta per seat.
type RoundResult struct {
	Number  int   `json:"number"`
	Results []int `json:"results"`
}

type lastAction struct {
	PlayerID uuid.UUID
	Action   action.Action
	Amount   int
}

// Game is a single heads-up no-limit hold'em table.
// All methods are synchronous and none block; a concurrent host must
// serialize mutating calls per instance.
type Game struct {
	id      uuid.UUID
	options Options
	logger  logrus.FieldLogger

	players            []*Player
	deck               *deck.Deck
	community          deck.Hand
	pot                int
	currentBet         int
	currentPlayerIndex int
	actedCount         int
	round              Round
	lastAction         *lastAction
	history            []RoundResult

	// shuffleSeed is only set by tests; 0 means a crypto-derived seed
	shuffleSeed int64

	// retained from the last completed hand so callers can render the
	// showdown after the pot has been zeroed
	winner          *Player
	splitPot        bool
	winningHand     string
	handDescription string
	finalHands      []FinalHand
	finalCommunity  deck.Hand
	finalPot        int
}

// FinalHand is a player's revealed hand at the end of a hand
type FinalHand struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Hand  deck.Hand `json:"hand"`
	Chips int       `json:"chips"`
}

// NewGame returns a new heads-up game waiting for players
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	id := uuid.New()
	return &Game{
		id:        id,
		options:   opts,
		logger:    logger.WithField("gameId", id),
		players:   make([]*Player, 0, 2),
		community: make(deck.Hand, 0, 5),
		round:     RoundWaiting,
	}, nil
}

// ID returns the game identifier
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Options returns the game options
func (g *Game) Options() Options {
	return g.options
}

// Round returns the current betting round
func (g *Game) Round() Round {
	return g.round
}

// PlayerCount returns the number of seated players
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// ReadyCount returns the number of seated players who are ready
func (g *Game) ReadyCount() int {
	n := 0
	for _, p := range g.players {
		if p.ready {
			n++
		}
	}

	return n
}

// Player returns the seated player with the given id
func (g *Game) Player(id uuid.UUID) (*Player, error) {
	for _, p := range g.players {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, ErrPlayerNotFound
}

// AddPlayer seats a player. Only two seats exist.
func (g *Game) AddPlayer(player *Player) error {
	if len(g.players) >= 2 {
		return ErrGameFull
	}

	g.players = append(g.players, player)
	g.logger.WithFields(logrus.Fields{
		"playerId": player.ID,
		"name":     player.Name,
	}).Info("player joined")

	return nil
}

// MarkReady marks a player as ready to start the next hand
func (g *Game) MarkReady(playerID uuid.UUID) error {
	if g.round != RoundWaiting {
		if g.round == RoundGameOver {
			return ErrHandOver
		}

		return ErrHandInProgress
	}

	player, err := g.Player(playerID)
	if err != nil {
		return err
	}

	player.ready = true
	return nil
}

// StartHand deals a new hand.
// Requires both seats filled, both players ready, and both able to post
// their blind; otherwise it fails with no state change.
func (g *Game) StartHand() error {
	if g.round != RoundWaiting {
		if g.round == RoundGameOver {
			return ErrHandOver
		}

		return ErrHandInProgress
	}

	if len(g.players) != 2 {
		return errors.New("need exactly 2 players to start")
	}

	for _, p := range g.players {
		if !p.ready {
			return errors.New("both players must be ready")
		}
	}

	if g.players[0].chips < g.options.SmallBlind || g.players[1].chips < g.options.BigBlind {
		return ErrNotEnoughChips
	}

	d := deck.New()
	d.Shuffle(g.shuffleSeed)
	g.deck = d

	g.community = make(deck.Hand, 0, 5)
	g.pot = 0
	g.lastAction = nil
	g.clearLastResult()

	// both hole cards go to seat 0, then both to seat 1
	for _, p := range g.players {
		p.resetHand()
		for i := 0; i < 2; i++ {
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			p.hand.AddCard(card)
		}
	}

	// blinds are posted in full; the balance check above guarantees these
	_ = g.players[0].placeBet(g.options.SmallBlind)
	_ = g.players[1].placeBet(g.options.BigBlind)

	g.pot = g.options.SmallBlind + g.options.BigBlind
	g.currentBet = g.options.BigBlind
	g.round = RoundPreFlop
	g.currentPlayerIndex = 0
	g.actedCount = 0

	g.logger.WithFields(logrus.Fields{
		"smallBlind": g.options.SmallBlind,
		"bigBlind":   g.options.BigBlind,
		"pot":        g.pot,
	}).Info("hand started")

	return nil
}

// ResetForNewHand returns the game to the waiting state.
// Seats, chip balances, and the round history carry over; both players must
// mark ready again before the next deal.
func (g *Game) ResetForNewHand() {
	g.round = RoundWaiting
	g.deck = nil
	g.community = make(deck.Hand, 0, 5)
	g.pot = 0
	g.currentBet = 0
	g.currentPlayerIndex = 0
	g.actedCount = 0
	g.lastAction = nil
	g.clearLastResult()

	for _, p := range g.players {
		p.resetHand()
		p.ready = false
	}
}

func (g *Game) clearLastResult() {
	g.winner = nil
	g.splitPot = false
	g.winningHand = ""
	g.handDescription = ""
	g.finalHands = nil
	g.finalCommunity = nil
	g.finalPot = 0
}
