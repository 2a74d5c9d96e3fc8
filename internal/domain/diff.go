package domain

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrDuplicateID is returned by Diff when a sequence repeats an identity.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrScriptOutOfRange is returned by Apply when an edit addresses a
	// position outside the working list.
	ErrScriptOutOfRange = errors.New("edit out of range")
)

// EditKind classifies a single edit of a Script.
type EditKind int

const (
	EditRemove EditKind = iota
	EditInsert
	EditMove
	EditUpdate
)

// String returns a human-readable name for the edit kind
func (k EditKind) String() string {
	switch k {
	case EditRemove:
		return "remove"
	case EditInsert:
		return "insert"
	case EditMove:
		return "move"
	case EditUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Edit is one positional operation.
//
//	Remove: From is the position in the working list.
//	Insert: To is the final position, Item the new element.
//	Move:   From is the position before the move, To the position after it.
//	Update: To is the final position, Item carries the new content.
type Edit[T any] struct {
	Kind EditKind
	From int
	To   int
	Item T
}

// Script is an ordered edit list: removals from the highest position down,
// then insertions from the lowest position up, then moves, then updates.
// Replaying it with Apply on a copy of the old sequence yields the new one.
type Script[T any] []Edit[T]

func (s Script[T]) count(kind EditKind) int {
	n := 0
	for _, e := range s {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Removals returns the number of remove edits.
func (s Script[T]) Removals() int { return s.count(EditRemove) }

// Insertions returns the number of insert edits.
func (s Script[T]) Insertions() int { return s.count(EditInsert) }

// Moves returns the number of move edits.
func (s Script[T]) Moves() int { return s.count(EditMove) }

// Updates returns the number of update edits.
func (s Script[T]) Updates() int { return s.count(EditUpdate) }

// Empty reports whether the script changes nothing.
func (s Script[T]) Empty() bool { return len(s) == 0 }

// Summary renders the edit counts, e.g. "+2 -1 ↕1 ~0".
func (s Script[T]) Summary() string {
	return fmt.Sprintf("+%d -%d ↕%d ~%d", s.Insertions(), s.Removals(), s.Moves(), s.Updates())
}

// DiffSpots reconciles two spot sequences by id, comparing content for updates.
func DiffSpots(old, new []Spot) (Script[Spot], error) {
	return Diff(old, new, SpotKey, SameContent)
}

// Diff computes the edit script turning old into new.
//
// Elements are matched by key, not by position, so a single insertion does
// not turn every following element into a remove/insert pair. Matched
// elements whose order changed become moves; those whose content differs
// according to equal become updates. An element may be both moved and
// updated.
//
// Both sequences must have unique keys; a repeated key is rejected with
// ErrDuplicateID. Diff keeps no state between calls.
func Diff[T any, K comparable](old, new []T, key func(T) K, equal func(a, b T) bool) (Script[T], error) {
	oldIndex, err := indexByKey(old, key)
	if err != nil {
		return nil, fmt.Errorf("old sequence: %w", err)
	}
	newIndex, err := indexByKey(new, key)
	if err != nil {
		return nil, fmt.Errorf("new sequence: %w", err)
	}

	var script Script[T]

	for i := len(old) - 1; i >= 0; i-- {
		if _, ok := newIndex[key(old[i])]; !ok {
			script = append(script, Edit[T]{Kind: EditRemove, From: i})
		}
	}

	// work mirrors the list being edited, each entry holding its final position.
	work := make([]int, 0, len(new))
	for _, item := range old {
		if pos, ok := newIndex[key(item)]; ok {
			work = append(work, pos)
		}
	}
	inserted := make([]bool, len(new))
	for pos, item := range new {
		if _, ok := oldIndex[key(item)]; ok {
			continue
		}
		inserted[pos] = true
		work = slices.Insert(work, pos, pos)
		script = append(script, Edit[T]{Kind: EditInsert, To: pos, Item: item})
	}

	stable := stablePositions(work, inserted)
	for pos := range new {
		if stable[pos] {
			continue
		}
		from := slices.Index(work, pos)
		work = slices.Delete(work, from, from+1)
		to := 0
		if pos > 0 {
			to = slices.Index(work, pos-1) + 1
		}
		work = slices.Insert(work, to, pos)
		if from != to {
			script = append(script, Edit[T]{Kind: EditMove, From: from, To: to})
		}
	}

	for pos, item := range new {
		if i, ok := oldIndex[key(item)]; ok && !equal(old[i], item) {
			script = append(script, Edit[T]{Kind: EditUpdate, To: pos, Item: item})
		}
	}

	return script, nil
}

// stablePositions marks the final positions that never move: every
// inserted element plus the longest run of matched elements that is
// already in final order and does not cross an inserted one.
func stablePositions(work []int, inserted []bool) []bool {
	// below[p] counts inserted positions smaller than p. Inserted elements
	// sit at their final index, so a matched element at index i with final
	// position p keeps its side of every inserted one iff below[i] == below[p].
	below := make([]int, len(inserted)+1)
	for p, ins := range inserted {
		below[p+1] = below[p]
		if ins {
			below[p+1]++
		}
	}

	var candidates []int
	for i, pos := range work {
		if !inserted[pos] && below[i] == below[pos] {
			candidates = append(candidates, pos)
		}
	}

	stable := slices.Clone(inserted)

	// Longest increasing subsequence by patience sorting.
	var tails []int
	prev := make([]int, len(candidates))
	for i, pos := range candidates {
		j := sort.Search(len(tails), func(k int) bool {
			return candidates[tails[k]] >= pos
		})
		prev[i] = -1
		if j > 0 {
			prev[i] = tails[j-1]
		}
		if j == len(tails) {
			tails = append(tails, i)
		} else {
			tails[j] = i
		}
	}
	if len(tails) > 0 {
		for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
			stable[candidates[i]] = true
		}
	}

	return stable
}

func indexByKey[T any, K comparable](items []T, key func(T) K) (map[K]int, error) {
	index := make(map[K]int, len(items))
	for i, item := range items {
		k := key(item)
		if first, ok := index[k]; ok {
			return nil, fmt.Errorf("%w: %v at positions %d and %d", ErrDuplicateID, k, first, i)
		}
		index[k] = i
	}
	return index, nil
}

// Apply replays script on a copy of old.
func Apply[T any](old []T, script Script[T]) ([]T, error) {
	out := slices.Clone(old)
	for n, e := range script {
		switch e.Kind {
		case EditRemove:
			if e.From < 0 || e.From >= len(out) {
				return nil, outOfRange(n, e, len(out))
			}
			out = slices.Delete(out, e.From, e.From+1)
		case EditInsert:
			if e.To < 0 || e.To > len(out) {
				return nil, outOfRange(n, e, len(out))
			}
			out = slices.Insert(out, e.To, e.Item)
		case EditMove:
			if e.From < 0 || e.From >= len(out) || e.To < 0 || e.To >= len(out) {
				return nil, outOfRange(n, e, len(out))
			}
			item := out[e.From]
			out = slices.Delete(out, e.From, e.From+1)
			out = slices.Insert(out, e.To, item)
		case EditUpdate:
			if e.To < 0 || e.To >= len(out) {
				return nil, outOfRange(n, e, len(out))
			}
			out[e.To] = e.Item
		default:
			return nil, fmt.Errorf("edit %d: unknown kind %d", n, e.Kind)
		}
	}
	return out, nil
}

func outOfRange[T any](n int, e Edit[T], size int) error {
	return fmt.Errorf("%w: edit %d (%s from=%d to=%d) on %d elements", ErrScriptOutOfRange, n, e.Kind, e.From, e.To, size)
}
