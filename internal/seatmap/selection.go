package seatmap

// Selection is the set of seat identifiers one user has tentatively picked.
// It is client-local and ephemeral: it lives for a single seat-picking
// session and is never persisted.  Insertion order is preserved so the
// checkout payload lists seats in the order they were chosen.
//
// A seat that was selected and then lost to another user is NOT evicted
// here; the next grid rebuild shows it unavailable, and the backend hold
// call remains the authoritative arbiter.  The selection never claims seat
// truth, it only records intent.
type Selection struct {
	order []string
	set   map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{set: make(map[string]struct{})}
}

// Toggle inserts id if absent and removes it if present, but only when the
// seat is available; toggling an unavailable seat is a no-op.  It reports
// whether the selection changed.
func (s *Selection) Toggle(id string, available bool) bool {
	if !available {
		return false
	}
	if _, ok := s.set[id]; ok {
		delete(s.set, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return true
	}
	s.set[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Contains reports whether id is currently selected.
func (s *Selection) Contains(id string) bool {
	_, ok := s.set[id]
	return ok
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.order = s.order[:0]
	s.set = make(map[string]struct{})
}

// Len returns the number of selected seats.
func (s *Selection) Len() int { return len(s.set) }

// IDs returns the selected identifiers in pick order.  The slice is a copy.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Set returns the selection as a membership map for grid building.
func (s *Selection) Set() map[string]struct{} {
	out := make(map[string]struct{}, len(s.set))
	for id := range s.set {
		out[id] = struct{}{}
	}
	return out
}

// Total multiplies the per-seat price by the selection size.
func (s *Selection) Total(pricePerSeat float64) float64 {
	return pricePerSeat * float64(len(s.set))
}
