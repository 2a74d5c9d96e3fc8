package domain

import "slices"

// DefaultLookahead is how close to the end of the stack the top position
// may come before another page is appended.
const DefaultLookahead = 5

// Deck is one presented snapshot of the card stack.
//
// Deck values are immutable: edits return a new Deck and never write to an
// existing Spots slice, so a previous snapshot can always be diffed against
// the next.
type Deck struct {
	Spots  []Spot
	Top    int   // index of the next card to present; len(Spots) when exhausted
	LastID int64 // id high-water mark, so ids survive removal and restarts
}

// NewDeck returns a deck presenting spots from the first card.
func NewDeck(spots []Spot, lastID int64) Deck {
	return Deck{
		Spots:  slices.Clone(spots),
		LastID: max(lastID, MaxID(spots)),
	}
}

// Len returns the number of cards in the deck, swiped ones included.
func (d Deck) Len() int {
	return len(d.Spots)
}

// Remaining returns the number of cards not yet swiped.
func (d Deck) Remaining() int {
	return d.Len() - d.top()
}

// Exhausted reports whether every card has been swiped.
func (d Deck) Exhausted() bool {
	return d.Remaining() == 0
}

// TopSpot returns the card at the top of the stack.
func (d Deck) TopSpot() (Spot, bool) {
	top := d.top()
	if top >= d.Len() {
		return Spot{}, false
	}
	return d.Spots[top], true
}

// Visible returns up to n cards starting at the top of the stack.
func (d Deck) Visible(n int) []Spot {
	top := d.top()
	end := min(top+max(n, 0), d.Len())
	return d.Spots[top:end]
}

// top clamps the focus index into [0, len(Spots)].
func (d Deck) top() int {
	return min(max(d.Top, 0), d.Len())
}

func (d Deck) with(spots []Spot, top int) Deck {
	next := Deck{Spots: spots, Top: top, LastID: max(d.LastID, MaxID(spots))}
	next.Top = next.top()
	return next
}

// InsertAtTop places spots at the top of the stack, first spot on top.
func (d Deck) InsertAtTop(spots ...Spot) Deck {
	top := d.top()
	return d.with(slices.Insert(slices.Clone(d.Spots), top, spots...), top)
}

// Append adds spots at the end of the stack.
func (d Deck) Append(spots ...Spot) Deck {
	return d.with(append(slices.Clone(d.Spots), spots...), d.top())
}

// RemoveFromTop removes up to n cards starting at the top of the stack.
// Nothing happens when no card is on top.
func (d Deck) RemoveFromTop(n int) Deck {
	top := d.top()
	n = min(max(n, 0), d.Len()-top)
	if n == 0 {
		return d
	}
	return d.with(slices.Delete(slices.Clone(d.Spots), top, top+n), top)
}

// RemoveFromEnd removes up to n cards from the end of the stack.
func (d Deck) RemoveFromEnd(n int) Deck {
	n = min(max(n, 0), d.Len())
	if n == 0 {
		return d
	}
	return d.with(slices.Clone(d.Spots[:d.Len()-n]), d.top())
}

// ReplaceTop swaps the card on top for spot, keeping the position.
func (d Deck) ReplaceTop(spot Spot) Deck {
	top := d.top()
	if top >= d.Len() {
		return d
	}
	spots := slices.Clone(d.Spots)
	spots[top] = spot
	return d.with(spots, top)
}

// SwapTopAndLast exchanges the card on top with the last card.
func (d Deck) SwapTopAndLast() Deck {
	top, last := d.top(), d.Len()-1
	if top >= last {
		return d
	}
	spots := slices.Clone(d.Spots)
	spots[top], spots[last] = spots[last], spots[top]
	return d.with(spots, top)
}

// Reset replaces the whole stack and presents it from the first card.
func (d Deck) Reset(spots []Spot) Deck {
	return d.with(slices.Clone(spots), 0)
}

// Advance moves the top position past the current card.
func (d Deck) Advance() Deck {
	return d.with(d.Spots, d.top()+1)
}

// Rewind brings the previously swiped card back on top.
func (d Deck) Rewind() Deck {
	return d.with(d.Spots, d.top()-1)
}

// ShouldPaginate reports whether the top position is within lookahead
// cards of the end of a non-empty stack.
func ShouldPaginate(top, count, lookahead int) bool {
	return count > 0 && count-top <= lookahead
}
