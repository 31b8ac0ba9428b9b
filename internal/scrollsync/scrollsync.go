// Package scrollsync keeps the category pill bar in step with the section the
// reader is looking at. The observation band and the reduction rule live here
// so the behaviour is testable server-side; a small embedded script feeds the
// browser's IntersectionObserver events through the same rules.
package scrollsync

import "fmt"

// Band is the horizontal slice of the viewport in which a section counts as
// "being read". TopPct is cut from the top edge, BottomPct from the bottom,
// both as percentages of viewport height.
type Band struct {
	TopPct    int
	BottomPct int
}

// DefaultBand leaves a band between 40% and 45% from the top of the viewport.
var DefaultBand = Band{TopPct: 40, BottomPct: 55}

// RootMargin renders the band as an IntersectionObserver rootMargin value.
func (b Band) RootMargin() string {
	return fmt.Sprintf("-%d%% 0px -%d%% 0px", b.TopPct, b.BottomPct)
}

// Event is one intersection notification for a section, in delivery order.
type Event struct {
	SectionID    string
	Intersecting bool
}

// Reduce applies intersection events in delivery order on top of the current
// active section. The last section to intersect wins; a section leaving the
// band changes nothing on its own, so the active pill never flickers to
// "none" between sections.
func Reduce(active string, events []Event) string {
	for _, ev := range events {
		if ev.Intersecting {
			active = ev.SectionID
		}
	}
	return active
}

// InitialActive resolves the pill to highlight on first paint: the URL
// fragment when it names a known section, otherwise the first section.
func InitialActive(fragment string, sectionIDs []string) string {
	if len(sectionIDs) == 0 {
		return ""
	}
	for _, id := range sectionIDs {
		if id == fragment {
			return id
		}
	}
	return sectionIDs[0]
}
