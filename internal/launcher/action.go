package launcher

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ActionType is the kind of step an action would take.
type ActionType string

const (
	ActionClick        ActionType = "click"
	ActionSearch       ActionType = "search"
	ActionRedirect     ActionType = "redirect"
	ActionConsultModel ActionType = "consultModel"
	ActionScroll       ActionType = "scroll"
)

// ParseActionType converts a raw type name into an ActionType.
func ParseActionType(s string) (ActionType, error) {
	switch t := ActionType(s); t {
	case ActionClick, ActionSearch, ActionRedirect, ActionConsultModel, ActionScroll:
		return t, nil
	default:
		return "", fmt.Errorf("unknown action type: %q", s)
	}
}

// Icon returns the symbolic icon name shown next to actions of this type.
func (t ActionType) Icon() string {
	switch t {
	case ActionClick:
		return "input-mouse-symbolic"
	case ActionSearch:
		return "system-search-symbolic"
	case ActionRedirect:
		return "web-browser-symbolic"
	case ActionConsultModel:
		return "dialog-information-symbolic"
	case ActionScroll:
		return "view-sort-descending-symbolic"
	default:
		return "image-missing"
	}
}

// Action is an immutable entry of the action list. Fields are read through
// accessors so an Action can't be altered once built.
type Action struct {
	id          string
	kind        ActionType
	description string
}

// NewAction creates an action with a fresh unique id.
func NewAction(kind ActionType, description string) Action {
	return Action{
		id:          uuid.NewString(),
		kind:        kind,
		description: description,
	}
}

func (a Action) ID() string          { return a.id }
func (a Action) Type() ActionType    { return a.kind }
func (a Action) Description() string { return a.description }
func (a Action) Icon() string        { return a.kind.Icon() }

var (
	sampleOnce    sync.Once
	sampleActions []Action
)

// SampleActions returns the fixed action list shown by the panel. Ids are
// generated once per process so they stay stable between calls. The returned
// slice is a copy.
func SampleActions() []Action {
	sampleOnce.Do(func() {
		sampleActions = []Action{
			NewAction(ActionClick, "Click the \"Sign in\" button"),
			NewAction(ActionSearch, "Search the web for the selected text"),
			NewAction(ActionRedirect, "Open the project page in the browser"),
			NewAction(ActionConsultModel, "Ask the model to summarize this window"),
			NewAction(ActionScroll, "Scroll to the bottom of the page"),
			NewAction(ActionClick, "Click \"Reply\" on the latest message"),
			NewAction(ActionSearch, "Search open tabs for \"invoice\""),
		}
	})

	actions := make([]Action, len(sampleActions))
	copy(actions, sampleActions)
	return actions
}
