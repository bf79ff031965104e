package handrank

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"headsuppoker-server/pkg/deck"
)

// Evaluate returns the best category the hole and community cards can make.
// It expects two hole cards and tolerates zero through five community cards.
// The cascade runs strongest to weakest and returns on the first match, so a
// full house never reports as the pair it also contains.
func Evaluate(holeCards, communityCards []*deck.Card) *Result {
	cards := make([]*deck.Card, 0, len(holeCards)+len(communityCards))
	cards = append(cards, holeCards...)
	cards = append(cards, communityCards...)

	var rankCounts [15]int
	var suitRanks [4][]int
	for _, c := range cards {
		rankCounts[c.Rank]++
		i := suitIndex(c.Suit)
		suitRanks[i] = append(suitRanks[i], c.Rank)
	}

	// distinct ranks, ascending
	distinct := make([]int, 0, 13)
	for r := 2; r <= deck.Ace; r++ {
		if rankCounts[r] > 0 {
			distinct = append(distinct, r)
		}
	}

	flushSuit, flushRanks := findFlush(suitRanks)
	straightHigh := findStraight(distinct)

	if flushSuit != "" && straightHigh > 0 && flushRanks[0] == deck.Ace {
		return &Result{
			Category:    RoyalFlush,
			Description: "Five cards of the same suit in sequence from 10 to Ace",
		}
	}

	if flushSuit != "" && straightHigh > 0 {
		return &Result{
			Category:    StraightFlush,
			Value:       straightHigh,
			Description: "Five cards of the same suit in sequence",
		}
	}

	if quad := bestRankWithCount(rankCounts, 4); quad > 0 {
		kickers := remainingRanks(distinct, 1, quad)

		desc := fmt.Sprintf("Four %ss", rankName(quad))
		if len(kickers) > 0 {
			desc = fmt.Sprintf("%s with a %s kicker", desc, rankName(kickers[0]))
		}

		return &Result{
			Category:    FourOfAKind,
			Value:       quad,
			Kickers:     kickers,
			Description: desc,
		}
	}

	if trips := bestRankAtLeast(rankCounts, 3, 0); trips > 0 {
		if pair := bestRankAtLeast(rankCounts, 2, trips); pair > 0 {
			return &Result{
				Category:    FullHouse,
				Value:       trips,
				Kickers:     []int{pair},
				Description: fmt.Sprintf("Three %ss with a pair of %ss", rankName(trips), rankName(pair)),
			}
		}
	}

	if flushSuit != "" {
		top5 := flushRanks[0:5]
		return &Result{
			Category:    Flush,
			Value:       top5[0],
			Kickers:     top5[1:],
			Description: fmt.Sprintf("%s-high flush in %s", rankName(top5[0]), flushSuit),
		}
	}

	if straightHigh > 0 {
		return &Result{
			Category:    Straight,
			Value:       straightHigh,
			Description: "Five cards in sequence",
		}
	}

	if trips := bestRankAtLeast(rankCounts, 3, 0); trips > 0 {
		kickers := remainingRanks(distinct, 2, trips)

		desc := fmt.Sprintf("Three %ss", rankName(trips))
		if len(kickers) == 2 {
			desc = fmt.Sprintf("%s with %s and %s kickers", desc, rankName(kickers[0]), rankName(kickers[1]))
		}

		return &Result{
			Category:    ThreeOfAKind,
			Value:       trips,
			Kickers:     kickers,
			Description: desc,
		}
	}

	pairs := ranksWithCount(rankCounts, 2)
	if len(pairs) == 2 {
		kickers := append([]int{pairs[1]}, remainingRanks(distinct, 1, pairs[0], pairs[1])...)

		desc := fmt.Sprintf("Pair of %ss and %ss", rankName(pairs[0]), rankName(pairs[1]))
		if len(kickers) > 1 {
			desc = fmt.Sprintf("%s with a %s kicker", desc, rankName(kickers[1]))
		}

		return &Result{
			Category:    TwoPair,
			Value:       pairs[0],
			Kickers:     kickers,
			Description: desc,
		}
	}

	if len(pairs) > 0 {
		pair := pairs[0]
		kickers := remainingRanks(distinct, 3, pair)

		desc := fmt.Sprintf("Pair of %ss", rankName(pair))
		if len(kickers) > 0 {
			names := make([]string, len(kickers))
			for i, k := range kickers {
				names[i] = rankName(k)
			}
			desc = fmt.Sprintf("%s with %s kickers", desc, strings.Join(names, ", "))
		}

		return &Result{
			Category:    OnePair,
			Value:       pair,
			Kickers:     kickers,
			Description: desc,
		}
	}

	high := distinct[len(distinct)-1]
	return &Result{
		Category:    HighCard,
		Value:       high,
		Description: fmt.Sprintf("Highest card: %s", rankName(high)),
	}
}

func suitIndex(s deck.Suit) int {
	switch s {
	case deck.Spades:
		return 0
	case deck.Clubs:
		return 1
	case deck.Hearts:
		return 2
	case deck.Diamonds:
		return 3
	}

	panic(fmt.Sprintf("unknown suit: %s", s))
}

// findFlush returns the suit holding five or more cards and its ranks in
// descending order. At most one suit can qualify in a seven-card hand.
func findFlush(suitRanks [4][]int) (deck.Suit, []int) {
	for i, suit := range []deck.Suit{deck.Spades, deck.Clubs, deck.Hearts, deck.Diamonds} {
		ranks := suitRanks[i]
		if len(ranks) < 5 {
			continue
		}

		sorted := make([]int, len(ranks))
		copy(sorted, ranks)
		sortDescending(sorted)
		return suit, sorted
	}

	return "", nil
}

// findStraight scans the distinct ranks for the highest window of five
// consecutive values. An ace only plays high; A-2-3-4-5 is not a straight.
func findStraight(distinct []int) int {
	for i := len(distinct) - 1; i >= 4; i-- {
		if distinct[i]-distinct[i-4] == 4 {
			return distinct[i]
		}
	}

	return 0
}

// bestRankWithCount returns the highest rank appearing exactly count times
func bestRankWithCount(rankCounts [15]int, count int) int {
	for r := deck.Ace; r >= 2; r-- {
		if rankCounts[r] == count {
			return r
		}
	}

	return 0
}

// bestRankAtLeast returns the highest rank, other than skip, appearing at
// least count times
func bestRankAtLeast(rankCounts [15]int, count, skip int) int {
	for r := deck.Ace; r >= 2; r-- {
		if r != skip && rankCounts[r] >= count {
			return r
		}
	}

	return 0
}

// ranksWithCount returns every rank appearing exactly count times, descending
func ranksWithCount(rankCounts [15]int, count int) []int {
	var ranks []int
	for r := deck.Ace; r >= 2; r-- {
		if rankCounts[r] == count {
			ranks = append(ranks, r)
		}
	}

	return ranks
}

// remainingRanks returns up to max of the highest distinct ranks not in exclude
func remainingRanks(distinct []int, max int, exclude ...int) []int {
	kickers := make([]int, 0, max)

outer:
	for i := len(distinct) - 1; i >= 0 && len(kickers) < max; i-- {
		for _, ex := range exclude {
			if distinct[i] == ex {
				continue outer
			}
		}

		kickers = append(kickers, distinct[i])
	}

	return kickers
}

func sortDescending(values []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
}

func rankName(rank int) string {
	switch rank {
	case deck.Ace:
		return "Ace"
	case deck.King:
		return "King"
	case deck.Queen:
		return "Queen"
	case deck.Jack:
		return "Jack"
	}

	return strconv.Itoa(rank)
}
