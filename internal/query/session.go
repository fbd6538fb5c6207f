package query

import (
	"log"

	"github.com/chess10kp/walter/internal/launcher"
)

// Deactivator hides the panel and calls after once the hide animation has
// finished.
type Deactivator interface {
	Deactivate(after func())
}

// Session is the panel's view model: it owns the machine, keeps the action
// list ranked for the current query and republishes every change.
type Session struct {
	machine     *Machine
	ranker      *launcher.Ranker
	ranked      []launcher.Action
	deactivator Deactivator
	listeners   []func(Snapshot, []launcher.Action)
}

func NewSession(ranker *launcher.Ranker, deactivator Deactivator) *Session {
	s := &Session{
		ranker:      ranker,
		ranked:      ranker.Rank(""),
		deactivator: deactivator,
	}
	s.machine = NewMachine(len(s.ranked))
	s.machine.Observe(s.publish)
	return s
}

// Subscribe registers fn to be called with the state and the ranked actions
// after every mutation.
func (s *Session) Subscribe(fn func(Snapshot, []launcher.Action)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Session) Snapshot() Snapshot {
	return s.machine.Snapshot()
}

// Actions returns the action list ranked for the current query.
func (s *Session) Actions() []launcher.Action {
	return append([]launcher.Action(nil), s.ranked...)
}

// Next advances the highlight.
func (s *Session) Next() {
	s.machine.AdvanceHighlight()
}

// SubmitOrRun submits the query or confirms the highlighted action. Confirmed
// actions are only reported; nothing is executed.
func (s *Session) SubmitOrRun() {
	before := s.machine.State()
	after := s.machine.SubmitOrRun()
	if before == Submitted && after == Done {
		if i, ok := s.machine.Selected(); ok && i < len(s.ranked) {
			a := s.ranked[i]
			log.Printf("Selected action %d: [%s] %s (%s)", i, a.Type(), a.Description(), a.ID())
		}
	}
}

// SetQuery records new query text, re-ranks the actions and returns to
// editing.
func (s *Session) SetQuery(text string) {
	s.ranked = s.ranker.Rank(text)
	s.machine.setLength(len(s.ranked))
	s.machine.SetQuery(text)
}

// Reset clears the query and returns to editing.
func (s *Session) Reset() {
	s.SetQuery("")
}

// Cancel hides the panel and resets the session once it is out of sight.
func (s *Session) Cancel() {
	if s.deactivator == nil {
		s.Reset()
		return
	}
	s.deactivator.Deactivate(s.Reset)
}

func (s *Session) publish(snap Snapshot) {
	actions := s.Actions()
	for _, fn := range s.listeners {
		fn(snap, actions)
	}
}
