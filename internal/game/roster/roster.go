// Package roster defines the ally/enemy roster entries an encounter is built
// from and the update functions that keep their invariants intact.
package roster

// Actor type identifiers as they appear on roster entries.
const (
	TypeCharacter = "character"
	TypeNPC       = "npc"
)

// Quantity bounds for a single roster entry.
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Entry is one ally or enemy line in an encounter roster.
//
// Invariant: after Normalize, Quantity is in [MinQuantity, MaxQuantity] and
// TotalXP == XP * Quantity.
type Entry struct {
	UUID     string   `yaml:"uuid"`
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Level    int      `yaml:"level"`
	CR       *float64 `yaml:"cr"`
	XP       int      `yaml:"xp"`
	Quantity int      `yaml:"quantity"`
	TotalXP  int      `yaml:"-"`
}

// ClampQuantity clamps q into [MinQuantity, MaxQuantity].
//
// Postcondition: MinQuantity <= return value <= MaxQuantity.
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// Normalize returns entries with every quantity clamped and every TotalXP
// restored to XP * Quantity. Negative XP degrades to 0. The input slice is
// not modified.
//
// Postcondition: for every returned entry e, e.TotalXP == e.XP * e.Quantity.
func Normalize(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		if e.XP < 0 {
			e.XP = 0
		}
		e.Quantity = ClampQuantity(e.Quantity)
		e.TotalXP = e.XP * e.Quantity
		out[i] = e
	}
	return out
}

// SetQuantity returns entries with the entry identified by uuid set to qty.
// When qty <= 0 and removeAtZero is true the entry is removed; otherwise qty
// is clamped into range. Entries with other UUIDs are untouched. The input
// slice is not modified.
//
// Postcondition: the returned slice satisfies the Normalize invariant for the
// updated entry.
func SetQuantity(entries []Entry, uuid string, qty int, removeAtZero bool) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.UUID != uuid {
			out = append(out, e)
			continue
		}
		if qty <= 0 && removeAtZero {
			continue
		}
		e.Quantity = ClampQuantity(qty)
		e.TotalXP = e.XP * e.Quantity
		out = append(out, e)
	}
	return out
}

// AdjustQuantity returns entries with the entry identified by uuid changed by
// delta, following the same removal and clamping rules as SetQuantity.
func AdjustQuantity(entries []Entry, uuid string, delta int, removeAtZero bool) []Entry {
	for _, e := range entries {
		if e.UUID == uuid {
			return SetQuantity(entries, uuid, e.Quantity+delta, removeAtZero)
		}
	}
	return entries
}

// TotalXP sums enemy XP across entries, using TotalXP when set and falling
// back to XP * Quantity otherwise.
//
// Postcondition: return value >= 0 for normalized input.
func TotalXP(entries []Entry) int {
	total := 0
	for _, e := range entries {
		if e.TotalXP != 0 {
			total += e.TotalXP
			continue
		}
		total += e.XP * ClampQuantity(e.Quantity)
	}
	return total
}

// MaxCR returns the highest challenge rating among entries that carry one.
//
// Postcondition: ok is false iff no entry has a non-nil CR.
func MaxCR(entries []Entry) (float64, bool) {
	max := 0.0
	found := false
	for _, e := range entries {
		if e.CR == nil {
			continue
		}
		if !found || *e.CR > max {
			max = *e.CR
			found = true
		}
	}
	return max, found
}
