package handrank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"headsuppoker-server/pkg/deck"
)

func evaluate(hole, community string) *Result {
	return Evaluate(deck.CardsFromString(hole), deck.CardsFromString(community))
}

func TestEvaluate_Categories(t *testing.T) {
	a := assert.New(t)

	r := evaluate("14s,13s", "12s,11s,10s,2d,3c")
	a.Equal(RoyalFlush, r.Category)
	a.Equal("Five cards of the same suit in sequence from 10 to Ace", r.Description)

	r = evaluate("9s,8s", "7s,6s,5s,2d,3c")
	a.Equal(StraightFlush, r.Category)
	a.Equal(9, r.Value)

	r = evaluate("14c,14d", "14h,14s,9c,5d,2h")
	a.Equal(FourOfAKind, r.Category)
	a.Equal(14, r.Value)
	a.Equal([]int{9}, r.Kickers)
	a.Equal("Four Aces with a 9 kicker", r.Description)

	r = evaluate("13c,13d", "13h,9c,9d,4s,2h")
	a.Equal(FullHouse, r.Category)
	a.Equal(13, r.Value)
	a.Equal([]int{9}, r.Kickers)
	a.Equal("Three Kings with a pair of 9s", r.Description)

	r = evaluate("14h,9h", "7h,5h,2h,13c,8d")
	a.Equal(Flush, r.Category)
	a.Equal(14, r.Value)
	a.Equal([]int{9, 7, 5, 2}, r.Kickers)
	a.Equal("Ace-high flush in hearts", r.Description)

	r = evaluate("9c,8d", "7h,6s,5c,13d,2h")
	a.Equal(Straight, r.Category)
	a.Equal(9, r.Value)

	r = evaluate("12c,12d", "12h,9c,7d,4s,2h")
	a.Equal(ThreeOfAKind, r.Category)
	a.Equal(12, r.Value)
	a.Equal([]int{9, 7}, r.Kickers)
	a.Equal("Three Queens with 9 and 7 kickers", r.Description)

	r = evaluate("13c,13d", "9c,9d,7h,4s,2h")
	a.Equal(TwoPair, r.Category)
	a.Equal(13, r.Value)
	a.Equal([]int{9, 7}, r.Kickers)
	a.Equal("Pair of Kings and 9s with a 7 kicker", r.Description)

	r = evaluate("11c,11d", "9c,7d,5s,3h,2h")
	a.Equal(OnePair, r.Category)
	a.Equal(11, r.Value)
	a.Equal([]int{9, 7, 5}, r.Kickers)
	a.Equal("Pair of Jacks with 9, 7, 5 kickers", r.Description)

	r = evaluate("14c,12d", "9c,7d,5s,3h,2h")
	a.Equal(HighCard, r.Category)
	a.Equal(14, r.Value)
	a.Equal("Highest card: Ace", r.Description)
}

func TestEvaluate_CategoryOrdering(t *testing.T) {
	// one canonical hand per category, weakest first
	results := []*Result{
		evaluate("14c,12d", "9c,7d,5s,3h,2h"),
		evaluate("11c,11d", "9c,7d,5s,3h,2h"),
		evaluate("13c,13d", "9c,9d,7h,4s,2h"),
		evaluate("12c,12d", "12h,9c,7d,4s,2h"),
		evaluate("9c,8d", "7h,6s,5c,13d,2h"),
		evaluate("14h,9h", "7h,5h,2h,13c,8d"),
		evaluate("13c,13d", "13h,9c,9d,4s,2h"),
		evaluate("14c,14d", "14h,14s,9c,5d,2h"),
		evaluate("9s,8s", "7s,6s,5s,2d,3c"),
		evaluate("14s,13s", "12s,11s,10s,2d,3c"),
	}

	for i := range results {
		assert.Equal(t, 0, results[i].Compare(results[i]))

		for j := i + 1; j < len(results); j++ {
			assert.Equal(t, -1, results[i].Compare(results[j]), "%s vs %s", results[i].Category, results[j].Category)
			assert.Equal(t, 1, results[j].Compare(results[i]), "%s vs %s", results[j].Category, results[i].Category)
		}
	}
}

func TestEvaluate_OrderInvariant(t *testing.T) {
	a := assert.New(t)

	expected := evaluate("13c,13d", "9c,9d,7h,4s,2h")

	cards := deck.CardsFromString("13c,13d,9c,9d,7h,4s,2h")
	for shift := 0; shift < len(cards); shift++ {
		rotated := append(cards[shift:], cards[0:shift]...)
		r := Evaluate(rotated[0:2], rotated[2:])
		a.Equal(expected.Category, r.Category)
		a.Equal(expected.Value, r.Value)
		a.Equal(expected.Kickers, r.Kickers)
	}
}

func TestEvaluate_NoWheel(t *testing.T) {
	// an ace only plays high, so A-2-3-4-5 is not a straight
	r := evaluate("14c,2d", "3h,4s,5c,9d,13h")
	assert.Equal(t, HighCard, r.Category)
	assert.Equal(t, 14, r.Value)
}

func TestEvaluate_RoyalFlushRequiresAceHighFlush(t *testing.T) {
	// an off-suit ace must not promote a nine-high straight flush
	r := evaluate("9s,8s", "7s,6s,5s,14d,2c")
	assert.Equal(t, StraightFlush, r.Category)
	assert.Equal(t, 9, r.Value)
}

func TestEvaluate_FlushAndStraightFromDifferentCards(t *testing.T) {
	// the flush and the straight need not share five cards to count as a
	// straight flush; this mirrors the legacy scoring
	r := evaluate("2s,4s", "5s,9s,13s,6d,3h")
	assert.Equal(t, StraightFlush, r.Category)
	assert.Equal(t, 6, r.Value)
}

func TestEvaluate_ThreePairsScoreAsOnePair(t *testing.T) {
	r := evaluate("13c,13d", "9c,9d,4s,4h,2h")
	assert.Equal(t, OnePair, r.Category)
	assert.Equal(t, 13, r.Value)
	assert.Equal(t, []int{9, 4, 2}, r.Kickers)
}

func TestEvaluate_TwoTriplesScoreAsFullHouse(t *testing.T) {
	r := evaluate("8c,8d", "8h,5c,5d,5s,2h")
	assert.Equal(t, FullHouse, r.Category)
	assert.Equal(t, 8, r.Value)
	assert.Equal(t, []int{5}, r.Kickers)
}

func TestEvaluate_FewerCommunityCards(t *testing.T) {
	a := assert.New(t)

	r := evaluate("14c,14d", "")
	a.Equal(OnePair, r.Category)
	a.Equal(14, r.Value)
	a.Empty(r.Kickers)
	a.Equal("Pair of Aces", r.Description)

	r = evaluate("14c,9d", "5h")
	a.Equal(HighCard, r.Category)
	a.Equal(14, r.Value)
}

func TestResult_Compare(t *testing.T) {
	a := assert.New(t)

	// value breaks category ties
	high := evaluate("13c,13d", "9c,7d,5s,3h,2h")
	low := evaluate("12c,12d", "9c,7d,5s,3h,2h")
	a.Equal(1, high.Compare(low))
	a.Equal(-1, low.Compare(high))

	// kickers break value ties
	high = evaluate("13c,13d", "10c,7d,5s,3h,2h")
	low = evaluate("13h,13s", "9c,7d,5s,3h,2h")
	a.Equal(1, high.Compare(low))
	a.Equal(-1, low.Compare(high))

	// a shared board straight is an exact tie
	p1 := evaluate("2c,3d", "10c,11d,12h,13s,14c")
	p2 := evaluate("2h,3s", "10c,11d,12h,13s,14c")
	a.Equal(0, p1.Compare(p2))
}
