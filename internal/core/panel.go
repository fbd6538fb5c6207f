package core

import (
	"fmt"
	"log"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"

	"github.com/chess10kp/walter/internal/config"
	"github.com/chess10kp/walter/internal/launcher"
	"github.com/chess10kp/walter/internal/query"
	"github.com/chess10kp/walter/internal/view"
)

var rowClasses = []string{"highlighted", "selected", "last"}

// Panel is the GTK rendering of the view tree.
type Panel struct {
	config     *config.Config
	session    *query.Session
	window     *gtk.Window
	content    *gtk.Box
	prompt     *gtk.Label
	entry      *gtk.Entry
	resultsBox *gtk.Box
	header     *gtk.Label
	resultList *gtk.ListBox
	buttonBox  *gtk.Box
	buttons    map[view.ButtonKind]*gtk.Button
	rows       []*resultRow
	pool       *WidgetPool
	updating   bool
	onResize   func(width, height int)
}

func NewPanel(cfg *config.Config, session *query.Session) (*Panel, error) {
	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.SetDecorated(false)
	win.SetSkipTaskbarHint(true)
	win.SetSkipPagerHint(true)
	win.SetTitle(cfg.AppName)
	win.SetName("panel-window")
	win.SetTypeHint(gdk.WINDOW_TYPE_HINT_UTILITY)
	win.SetDefaultSize(cfg.Window.Width, cfg.Window.MinHeight)

	content, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create box: %w", err)
	}
	content.SetName("panel-content")
	win.Add(content)

	prompt, err := gtk.LabelNew(view.PromptText)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt: %w", err)
	}
	prompt.SetName("prompt")
	prompt.SetHAlign(gtk.ALIGN_START)
	content.PackStart(prompt, false, false, 0)

	entry, err := gtk.EntryNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create query entry: %w", err)
	}
	entry.SetName("query-entry")
	entry.SetPlaceholderText(view.PlaceholderText)
	content.PackStart(entry, false, false, 0)

	resultsBox, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create results box: %w", err)
	}
	resultsBox.SetNoShowAll(true)
	content.PackStart(resultsBox, false, false, 0)

	header, err := gtk.LabelNew(view.TopHitsHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create header: %w", err)
	}
	header.SetName("results-header")
	header.SetHAlign(gtk.ALIGN_START)
	resultsBox.PackStart(header, false, false, 0)

	resultList, err := gtk.ListBoxNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create result list: %w", err)
	}
	resultList.SetName("result-list")
	resultList.SetSelectionMode(gtk.SELECTION_NONE)
	resultsBox.PackStart(resultList, false, false, 0)

	buttonBox, err := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 6)
	if err != nil {
		return nil, fmt.Errorf("failed to create button box: %w", err)
	}
	buttonBox.SetName("button-box")
	buttonBox.SetHAlign(gtk.ALIGN_END)
	buttonBox.SetNoShowAll(true)
	content.PackStart(buttonBox, false, false, 0)

	p := &Panel{
		config:     cfg,
		session:    session,
		window:     win,
		content:    content,
		prompt:     prompt,
		entry:      entry,
		resultsBox: resultsBox,
		header:     header,
		resultList: resultList,
		buttonBox:  buttonBox,
		buttons:    make(map[view.ButtonKind]*gtk.Button),
		pool:       NewWidgetPool(),
	}

	for _, kind := range []view.ButtonKind{view.ButtonCancel, view.ButtonNext, view.ButtonRun} {
		b, err := gtk.ButtonNew()
		if err != nil {
			return nil, fmt.Errorf("failed to create %s button: %w", kind, err)
		}
		kind := kind
		b.Connect("clicked", func() { p.onButton(kind) })
		buttonBox.PackStart(b, false, false, 0)
		p.buttons[kind] = b
	}

	p.setupSignals()
	session.Subscribe(func(snap query.Snapshot, actions []launcher.Action) {
		p.Apply(view.Render(snap, actions))
	})
	p.Apply(view.Render(session.Snapshot(), session.Actions()))

	return p, nil
}

func (p *Panel) Window() *gtk.Window { return p.window }

// OnContentResize registers the callback for content size changes. It is
// always invoked from an idle callback, never during layout.
func (p *Panel) OnContentResize(fn func(width, height int)) {
	p.onResize = fn
}

func (p *Panel) setupSignals() {
	p.entry.Connect("changed", func() {
		if p.updating {
			return
		}
		text, _ := p.entry.GetText()
		p.session.SetQuery(text)
	})

	p.entry.Connect("activate", func() {
		p.session.SubmitOrRun()
	})

	p.entry.Connect("key-press-event", func(entry *gtk.Entry, event *gdk.Event) bool {
		keyEvent := gdk.EventKeyNewFromEvent(event)
		return p.onKeyPress(keyEvent)
	})

	p.content.Connect("size-allocate", func() {
		p.queueResize()
	})
}

func (p *Panel) onKeyPress(event *gdk.EventKey) bool {
	switch event.KeyVal() {
	case gdk.KEY_Escape:
		p.session.Cancel()
		return true
	case gdk.KEY_Tab, gdk.KEY_Down:
		p.session.Next()
		return true
	}
	return false
}

func (p *Panel) onButton(kind view.ButtonKind) {
	switch kind {
	case view.ButtonCancel:
		p.session.Cancel()
	case view.ButtonNext:
		p.session.Next()
	case view.ButtonRun:
		p.session.SubmitOrRun()
	}
}

// FocusQuery moves keyboard focus to the query field.
func (p *Panel) FocusQuery() {
	p.entry.GrabFocus()
	p.entry.SetPosition(-1)
}

// Apply brings the widgets in line with tree.
func (p *Panel) Apply(tree view.Tree) {
	p.prompt.SetText(tree.Prompt)
	p.entry.SetPlaceholderText(tree.Placeholder)
	if text, _ := p.entry.GetText(); text != tree.Query {
		p.updating = true
		p.entry.SetText(tree.Query)
		p.updating = false
	}

	if tree.Results == nil {
		p.resultsBox.Hide()
	} else {
		p.header.SetText(tree.Results.Header)
		p.applyRows(tree.Results.Rows)
		p.resultsBox.ShowAll()
	}

	if len(tree.Buttons) == 0 {
		p.buttonBox.Hide()
	} else {
		for _, btn := range tree.Buttons {
			b := p.buttons[btn.Kind]
			b.SetLabel(btn.Label)
			b.SetName(btn.Name)
			b.SetSensitive(btn.Enabled)
		}
		p.buttonBox.ShowAll()
	}

	p.queueResize()
}

func (p *Panel) applyRows(rows []view.Row) {
	for len(p.rows) > len(rows) {
		last := p.rows[len(p.rows)-1]
		p.rows = p.rows[:len(p.rows)-1]
		p.resultList.Remove(last.row)
		p.pool.ReturnRow(last)
	}
	for len(p.rows) < len(rows) {
		r, err := p.pool.GetOrCreateRow()
		if err != nil {
			log.Printf("Failed to create result row: %v", err)
			break
		}
		p.resultList.Add(r.row)
		p.rows = append(p.rows, r)
	}

	for i, r := range p.rows {
		row := rows[i]
		r.icon.SetFromIconName(row.Icon, gtk.ICON_SIZE_MENU)
		r.label.SetText(row.Text)

		ctx, err := r.row.GetStyleContext()
		if err != nil {
			continue
		}
		ctx.AddClass("list-row")
		for _, c := range rowClasses {
			ctx.RemoveClass(c)
		}
		if c := row.Class(); c != "" {
			ctx.AddClass(c)
		}
		if row.Last {
			ctx.AddClass("last")
		}
	}
}

// queueResize reports the natural content size from an idle callback so the
// host window is never resized during a layout pass.
func (p *Panel) queueResize() {
	if p.onResize == nil {
		return
	}
	dispatch(func() {
		_, height := p.content.GetPreferredHeight()
		p.onResize(p.config.Window.Width, height)
	})
}
