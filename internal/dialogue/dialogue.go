// Package dialogue implements paginated NPC text sessions with optional
// pending choices. Content lives in data tables keyed by NPC identity and
// branches on the persistent quest flags; control flow stays in the world.
package dialogue

import "sunny-days/internal/npc"

// ChoiceKind identifies the pending choice a session is waiting on, if any.
type ChoiceKind int

const (
	ChoiceNone  ChoiceKind = iota
	ChoiceQuest            // Y/N, gates a one-time quest flag
	ChoiceGear             // S/H, picks one of two starter items
	ChoiceChest            // T/U/D, take / use now / discard
)

// Session is one active dialogue. At most one exists at a time.
type Session struct {
	NPC   npc.ID
	Title string
	Pages []string
	Page  int

	// Pending is the choice blocking the session from closing, ChoiceNone
	// when plain text.
	Pending ChoiceKind

	// PostBattle marks victory dialogue; closing it triggers no further
	// transition.
	PostBattle bool
}

// Current returns the page under the cursor, "" when out of range.
func (s *Session) Current() string {
	if s.Page < 0 || s.Page >= len(s.Pages) {
		return ""
	}
	return s.Pages[s.Page]
}

// Advance moves to the next page. Returns false when there is no next page;
// the caller then closes the session unless a choice is pending.
func (s *Session) Advance() bool {
	if s.Page+1 < len(s.Pages) {
		s.Page++
		return true
	}
	return false
}

// Answer resolves a pending choice, rewriting the remaining pages with the
// outcome text and moving onto its first page.
func (s *Session) Answer(pages []string) {
	s.Pending = ChoiceNone
	s.Pages = append(s.Pages[:s.Page+1], pages...)
	s.Page++
}

// AnswerQuest resolves a pending Y/N choice with the acceptance or refusal
// text. The caller sets the quest flag on accept.
func (s *Session) AnswerQuest(accept bool, acceptPages, refusePages []string) {
	if accept {
		s.Answer(acceptPages)
	} else {
		s.Answer(refusePages)
	}
}

// ResolveChoice clears the pending choice; used by outcomes that always
// close the session afterwards (the chest choice).
func (s *Session) ResolveChoice() {
	s.Pending = ChoiceNone
}
