package domain

// Spot is a single card in the stack: a campus club with a stable identity
// and a content payload (name, type, picture URL).
type Spot struct {
	ID   int64  // assigned once by an IDGenerator, never reused
	Name string // e.g., "Squirrel Watchers"
	Type string // e.g., "Social"
	URL  string // picture shown on the card
}

// SameSpot reports whether a and b are the same entity.
func SameSpot(a, b Spot) bool {
	return a.ID == b.ID
}

// SameContent reports whether a and b carry the same payload, ignoring identity.
func SameContent(a, b Spot) bool {
	return a.Name == b.Name && a.Type == b.Type && a.URL == b.URL
}

// SpotKey returns the identity used to match spots across snapshots.
func SpotKey(s Spot) int64 {
	return s.ID
}

// Stamp returns copies of spots with fresh identities drawn from gen.
func Stamp(gen IDGenerator, spots ...Spot) []Spot {
	out := make([]Spot, len(spots))
	for i, s := range spots {
		s.ID = gen.Next()
		out[i] = s
	}
	return out
}

// IDs returns the identities of spots in order.
func IDs(spots []Spot) []int64 {
	ids := make([]int64, len(spots))
	for i, s := range spots {
		ids[i] = s.ID
	}
	return ids
}

// MaxID returns the largest id in spots, or 0.
func MaxID(spots []Spot) int64 {
	var highest int64
	for _, s := range spots {
		highest = max(highest, s.ID)
	}
	return highest
}
