package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	d := New()

	assert.Equal(t, 52, d.CardsLeft())

	assert.Equal(t, Card{Rank: 2, Suit: Spades}, *d.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Diamonds}, *d.Cards[51])

	// all 52 cards are unique
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		seen[*card] = true
	}
	assert.Equal(t, 52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	unshuffled := New().HashCode()

	d := New()
	d.Shuffle(1)
	assert.Equal(t, int64(1), d.GetSeed())
	assert.NotEqual(t, unshuffled, d.HashCode())

	// same seed yields the same order
	d2 := New()
	d2.Shuffle(1)
	assert.Equal(t, d.HashCode(), d2.HashCode())

	// a reshuffle from a fresh seed changes the order
	d2.Shuffle(2)
	assert.NotEqual(t, d.HashCode(), d2.HashCode())

	// shuffling always rebuilds the full deck, even after draws
	_, _ = d.Draw()
	d.Shuffle(3)
	assert.Equal(t, 52, d.CardsLeft())

	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		seen[*card] = true
	}
	assert.Equal(t, 52, len(seen))
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	if !d.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if d.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	// draws come from the tail
	card, err := d.Draw()
	assert.NoError(t, err)
	assert.Equal(t, Card{Rank: 14, Suit: Diamonds}, *card)

	for i := 0; i < 51; i++ {
		card, err := d.Draw()
		assert.NotNil(t, card)
		assert.NoError(t, err)
	}

	card, err = d.Draw()
	assert.Nil(t, card)
	assert.Equal(t, ErrEndOfDeck, err)
}
