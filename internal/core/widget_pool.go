package core

import (
	"fmt"

	"github.com/gotk3/gotk3/gtk"
)

// resultRow is one pooled row of the results list.
type resultRow struct {
	row   *gtk.ListBoxRow
	icon  *gtk.Image
	label *gtk.Label
}

// WidgetPool keeps result rows alive between renders so the list is not
// rebuilt on every keystroke.
type WidgetPool struct {
	rows []*resultRow
}

func NewWidgetPool() *WidgetPool {
	return &WidgetPool{
		rows: make([]*resultRow, 0),
	}
}

// GetOrCreateRow returns a pooled row or builds a new one.
func (wp *WidgetPool) GetOrCreateRow() (*resultRow, error) {
	if len(wp.rows) > 0 {
		r := wp.rows[len(wp.rows)-1]
		wp.rows = wp.rows[:len(wp.rows)-1]
		return r, nil
	}
	return newResultRow()
}

// ReturnRow hides a detached row and keeps it for reuse.
func (wp *WidgetPool) ReturnRow(r *resultRow) {
	if r == nil {
		return
	}
	r.row.Hide()
	wp.rows = append(wp.rows, r)
}

func newResultRow() (*resultRow, error) {
	row, err := gtk.ListBoxRowNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create row: %w", err)
	}
	row.SetName("list-row")
	row.SetSelectable(false)
	row.SetActivatable(false)

	box, err := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 8)
	if err != nil {
		return nil, fmt.Errorf("failed to create row box: %w", err)
	}
	box.SetMarginStart(8)
	box.SetMarginEnd(8)
	box.SetMarginTop(6)
	box.SetMarginBottom(6)

	icon, err := gtk.ImageNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create row icon: %w", err)
	}
	box.PackStart(icon, false, false, 0)

	label, err := gtk.LabelNew("")
	if err != nil {
		return nil, fmt.Errorf("failed to create row label: %w", err)
	}
	label.SetHAlign(gtk.ALIGN_START)
	label.SetLineWrap(true)
	box.PackStart(label, true, true, 0)

	row.Add(box)
	return &resultRow{row: row, icon: icon, label: label}, nil
}
