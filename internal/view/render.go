// Package view projects panel state onto a render tree. Render is pure: the
// toolkit layer re-applies the returned tree after every state change.
package view

import (
	"github.com/chess10kp/walter/internal/launcher"
	"github.com/chess10kp/walter/internal/query"
)

const (
	PromptText       = "How can I help you?"
	PlaceholderText  = "Type to Walter"
	TopHitsHeader    = "Top Hits"
	classHighlighted = "highlighted"
	classSelected    = "selected"
)

// ButtonKind identifies one of the action buttons.
type ButtonKind int

const (
	ButtonCancel ButtonKind = iota
	ButtonNext
	ButtonRun
)

func (k ButtonKind) String() string {
	switch k {
	case ButtonCancel:
		return "cancel"
	case ButtonNext:
		return "next"
	case ButtonRun:
		return "run"
	default:
		return "unknown"
	}
}

type Tree struct {
	Prompt      string
	Placeholder string
	Query       string
	State       query.State
	Results     *Section // nil while editing
	Buttons     []Button
}

type Section struct {
	Header string
	Rows   []Row
}

type Row struct {
	ActionID    string
	Icon        string
	Text        string
	Highlighted bool
	Selected    bool
	Last        bool
}

// Class is the CSS class of the row, empty for a plain row. Selection wins
// over highlight.
func (r Row) Class() string {
	switch {
	case r.Selected:
		return classSelected
	case r.Highlighted:
		return classHighlighted
	default:
		return ""
	}
}

type Button struct {
	Kind    ButtonKind
	Label   string
	Name    string
	Enabled bool
}

// Render builds the tree for a state and its ranked actions.
func Render(snap query.Snapshot, actions []launcher.Action) Tree {
	tree := Tree{
		Prompt:      PromptText,
		Placeholder: PlaceholderText,
		Query:       snap.Query,
		State:       snap.State,
	}

	if snap.State == query.Editing {
		return tree
	}

	section := &Section{Header: TopHitsHeader, Rows: make([]Row, 0, len(actions))}
	for i, a := range actions {
		section.Rows = append(section.Rows, Row{
			ActionID:    a.ID(),
			Icon:        a.Icon(),
			Text:        a.Description(),
			Highlighted: snap.Highlighted == i,
			Selected:    snap.Selected == i,
			Last:        i == len(actions)-1,
		})
	}
	tree.Results = section

	submitted := snap.State == query.Submitted
	tree.Buttons = []Button{
		{Kind: ButtonCancel, Label: "Cancel", Name: "cancel-button", Enabled: true},
		{Kind: ButtonNext, Label: "Next", Name: "next-button", Enabled: submitted && snap.HasHighlight() && snap.Highlighted < len(actions)-1},
		{Kind: ButtonRun, Label: "Run", Name: "run-button", Enabled: submitted},
	}
	return tree
}
