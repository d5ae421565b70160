package dog

// Action is one legal move: play Card, optionally moving a marble from
// PosFrom to PosTo, or (for Joker nominations and the partner card-pass)
// naming CardSwap instead (§4.1).
type Action struct {
	Card     Card
	PosFrom  *int
	PosTo    *int
	CardSwap *Card
}

func intPtr(v int) *int {
	return &v
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalCardPtr(a, b *Card) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Equal reports whether two actions are the same (card, pos_from, pos_to,
// card_swap) tuple, the dedup key from §4.5.
func (a Action) Equal(b Action) bool {
	return a.Card == b.Card &&
		equalIntPtr(a.PosFrom, b.PosFrom) &&
		equalIntPtr(a.PosTo, b.PosTo) &&
		equalCardPtr(a.CardSwap, b.CardSwap)
}

func dedupActions(actions []Action) []Action {
	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		dup := false
		for _, seen := range out {
			if a.Equal(seen) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, a)
		}
	}
	return out
}
