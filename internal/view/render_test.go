package view

import (
	"testing"

	"github.com/chess10kp/walter/internal/launcher"
	"github.com/chess10kp/walter/internal/query"
)

func snapshot(state query.State, highlighted, selected, length int) query.Snapshot {
	return query.Snapshot{
		State:       state,
		Query:       "find",
		Highlighted: highlighted,
		Selected:    selected,
		Length:      length,
	}
}

func TestRenderEditingHidesResults(t *testing.T) {
	actions := launcher.SampleActions()
	tree := Render(snapshot(query.Editing, query.NoIndex, query.NoIndex, len(actions)), actions)

	if tree.Results != nil {
		t.Error("Expected no results while editing")
	}
	if len(tree.Buttons) != 0 {
		t.Errorf("Expected no buttons while editing, got %d", len(tree.Buttons))
	}
	if tree.Prompt != PromptText || tree.Placeholder != PlaceholderText {
		t.Errorf("Unexpected prompt/placeholder %q/%q", tree.Prompt, tree.Placeholder)
	}
	if tree.Query != "find" {
		t.Errorf("Expected query text to be carried, got %q", tree.Query)
	}
}

func TestRenderSubmittedHighlightsRow(t *testing.T) {
	actions := launcher.SampleActions()
	tree := Render(snapshot(query.Submitted, 2, query.NoIndex, len(actions)), actions)

	if tree.Results == nil {
		t.Fatal("Expected results when submitted")
	}
	if tree.Results.Header != TopHitsHeader {
		t.Errorf("Expected header %q, got %q", TopHitsHeader, tree.Results.Header)
	}
	if len(tree.Results.Rows) != len(actions) {
		t.Fatalf("Expected %d rows, got %d", len(actions), len(tree.Results.Rows))
	}

	for i, row := range tree.Results.Rows {
		if row.Highlighted != (i == 2) {
			t.Errorf("Row %d highlighted=%v", i, row.Highlighted)
		}
		if row.Selected {
			t.Errorf("Row %d should not be selected", i)
		}
		if row.Last != (i == len(actions)-1) {
			t.Errorf("Row %d last=%v", i, row.Last)
		}
		if row.ActionID != actions[i].ID() || row.Text != actions[i].Description() || row.Icon != actions[i].Icon() {
			t.Errorf("Row %d does not mirror its action", i)
		}
	}

	if got := tree.Results.Rows[2].Class(); got != "highlighted" {
		t.Errorf("Expected highlighted class, got %q", got)
	}

	kinds := []ButtonKind{ButtonCancel, ButtonNext, ButtonRun}
	if len(tree.Buttons) != len(kinds) {
		t.Fatalf("Expected %d buttons, got %d", len(kinds), len(tree.Buttons))
	}
	for i, k := range kinds {
		if tree.Buttons[i].Kind != k {
			t.Errorf("Button %d: expected %s, got %s", i, k, tree.Buttons[i].Kind)
		}
		if !tree.Buttons[i].Enabled {
			t.Errorf("Button %s should be enabled while submitted", k)
		}
	}
}

func TestRenderDoneMarksSelection(t *testing.T) {
	actions := launcher.SampleActions()
	tree := Render(snapshot(query.Done, query.NoIndex, 1, len(actions)), actions)

	row := tree.Results.Rows[1]
	if !row.Selected || row.Highlighted {
		t.Errorf("Expected row 1 selected only, got %+v", row)
	}
	if row.Class() != "selected" {
		t.Errorf("Expected selected class, got %q", row.Class())
	}
	for _, b := range tree.Buttons {
		if b.Kind != ButtonCancel && b.Enabled {
			t.Errorf("Button %s should be disabled when done", b.Kind)
		}
	}
}

func TestRenderNextDisabledOnLastRow(t *testing.T) {
	actions := launcher.SampleActions()
	tree := Render(snapshot(query.Submitted, len(actions)-1, query.NoIndex, len(actions)), actions)
	for _, b := range tree.Buttons {
		if b.Kind == ButtonNext && b.Enabled {
			t.Error("Next should be disabled on the last row")
		}
	}
}

func TestRenderIsPure(t *testing.T) {
	actions := launcher.SampleActions()
	snap := snapshot(query.Submitted, 0, query.NoIndex, len(actions))

	a := Render(snap, actions)
	b := Render(snap, actions)
	if len(a.Results.Rows) != len(b.Results.Rows) {
		t.Fatal("Render returned different trees for the same input")
	}
	for i := range a.Results.Rows {
		if a.Results.Rows[i] != b.Results.Rows[i] {
			t.Errorf("Row %d differs between renders", i)
		}
	}
}
