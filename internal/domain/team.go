package domain

// MaxTeamSize caps how many members one team may hold.
const MaxTeamSize = 6

// Team is a user-curated ordered set of up to six Pokémon summaries with a
// stable id. Members never contain duplicates (by id/name).
type Team struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Members []Summary `json:"members"`
}

// Clone returns a deep copy so callers cannot mutate shared member slices.
func (t Team) Clone() Team {
	out := t
	out.Members = make([]Summary, len(t.Members))
	copy(out.Members, t.Members)
	return out
}

// HasMember reports whether a summary with the same derived id (or name,
// when no id is derivable) is already on the team.
func (t Team) HasMember(s Summary) bool {
	id := SummaryID(s)
	for _, m := range t.Members {
		if id > 0 && SummaryID(m) == id {
			return true
		}
		if m.Name == s.Name {
			return true
		}
	}
	return false
}
