package domain

import "time"

// TitlePayload is one fetched title, already transformed out of the
// upstream wire shape. Cast and Crew preserve the upstream ordering,
// which the credit synchronizer relies on for tie-breaking.
type TitlePayload struct {
	ExternalID   int64
	Kind         MediaKind
	Overview     string
	BackdropPath string
	ReleaseDate  *time.Time
	Popularity   float64
	Rating       string // normalized age rating; empty when upstream has none
	Cast         []Credit
	Crew         []Credit
}

// Credit is one cast or crew membership from a fetched title.
type Credit struct {
	PersonID   int64
	Name       string
	AvatarPath string
	Job        string // crew job title; empty for cast credits
	Order      int    // cast billing order; 0 for crew
}

// PersonIDs returns the deduplicated person ids across cast and crew,
// in first-seen order.
func (p *TitlePayload) PersonIDs() []int64 {
	seen := make(map[int64]struct{}, len(p.Cast)+len(p.Crew))
	var ids []int64
	for _, c := range p.Cast {
		if _, ok := seen[c.PersonID]; !ok {
			seen[c.PersonID] = struct{}{}
			ids = append(ids, c.PersonID)
		}
	}
	for _, c := range p.Crew {
		if _, ok := seen[c.PersonID]; !ok {
			seen[c.PersonID] = struct{}{}
			ids = append(ids, c.PersonID)
		}
	}
	return ids
}

// CreditByPerson returns the first credit carrying the given person id,
// preferring cast entries (they carry the avatar most reliably).
func (p *TitlePayload) CreditByPerson(id int64) (Credit, bool) {
	for _, c := range p.Cast {
		if c.PersonID == id {
			return c, true
		}
	}
	for _, c := range p.Crew {
		if c.PersonID == id {
			return c, true
		}
	}
	return Credit{}, false
}
