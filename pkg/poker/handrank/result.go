package handrank

// Result is the outcome of evaluating a hand.
// Value is the rank used for tiebreaks within a category, and Kickers break
// ties when Category and Value match, highest first.
type Result struct {
	Category    Category `json:"category"`
	Value       int      `json:"value"`
	Kickers     []int    `json:"kickers"`
	Description string   `json:"description"`
}

// Compare returns 1 if r beats other, -1 if other beats r, and 0 on an exact tie.
// Categories compare first, then values, then kickers element-wise.
func (r *Result) Compare(other *Result) int {
	if r.Category != other.Category {
		if r.Category > other.Category {
			return 1
		}

		return -1
	}

	if r.Value != other.Value {
		if r.Value > other.Value {
			return 1
		}

		return -1
	}

	n := len(r.Kickers)
	if len(other.Kickers) < n {
		n = len(other.Kickers)
	}

	for i := 0; i < n; i++ {
		if r.Kickers[i] != other.Kickers[i] {
			if r.Kickers[i] > other.Kickers[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}
