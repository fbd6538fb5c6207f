package core

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"

	"github.com/chess10kp/walter/internal/config"
)

var stylesTemplate = template.Must(template.New("styles").Parse(`
* {
    font-family: {{.FontFamily}};
    font-size: {{.FontSize}}px;
    margin: 0;
    padding: 0;
}

#panel-window {
    background-color: {{.BackgroundColor}};
    color: {{.ForegroundColor}};
    border-radius: {{.BorderRadius}}px;
    border: 1px solid {{.BorderColor}};
}

#panel-content {
    background-color: {{.BackgroundColor}};
    padding: 12px;
}

#prompt {
    color: {{.ForegroundColor}};
    font-weight: bold;
    font-size: {{.PromptSize}}px;
    margin-bottom: 8px;
}

#query-entry {
    background-color: {{.BorderColor}};
    color: {{.ForegroundColor}};
    padding: 8px;
    border: none;
    border-radius: {{.BorderRadius}}px;
}

#query-entry:focus {
    box-shadow: inset 0 0 0 1px {{.AccentColor}};
}

#results-header {
    color: {{.ForegroundColor}};
    opacity: 0.6;
    font-size: {{.HeaderSize}}px;
    margin-top: 12px;
    margin-bottom: 4px;
}

#result-list {
    background-color: transparent;
}

.list-row {
    border-bottom: 1px solid {{.BorderColor}};
    border-radius: {{.BorderRadius}}px;
}

.list-row.last {
    border-bottom: none;
}

.list-row.highlighted {
    background-color: {{.AccentColor}};
    color: {{.BackgroundColor}};
}

.list-row.selected {
    background-color: alpha({{.DangerColor}}, 0.2);
    color: {{.DangerColor}};
    font-weight: bold;
}

#button-box {
    margin-top: 12px;
}

#cancel-button, #next-button, #run-button {
    padding: 4px 12px;
    border-radius: {{.BorderRadius}}px;
}

#cancel-button {
    color: {{.DangerColor}};
}

#run-button {
    background-color: {{.AccentColor}};
    color: {{.BackgroundColor}};
}
`))

type styleValues struct {
	config.StylingConfig
	PromptSize int
	HeaderSize int
}

// RenderStyles builds the stylesheet for the styling section.
func RenderStyles(s config.StylingConfig) (string, error) {
	var buf bytes.Buffer
	values := styleValues{
		StylingConfig: s,
		PromptSize:    s.FontSize + 4,
		HeaderSize:    s.FontSize - 2,
	}
	if err := stylesTemplate.Execute(&buf, values); err != nil {
		return "", fmt.Errorf("failed to render styles: %w", err)
	}
	return buf.String(), nil
}

var globalStyleProvider *gtk.CssProvider

// SetupStyles installs the stylesheet, replacing any earlier one.
func SetupStyles(s config.StylingConfig) {
	screen, err := gdk.ScreenGetDefault()
	if err != nil || screen == nil {
		log.Printf("Warning: Failed to get default screen: %v", err)
		return
	}

	css, err := RenderStyles(s)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}

	provider, err := gtk.CssProviderNew()
	if err != nil {
		log.Printf("Warning: Failed to create style provider: %v", err)
		return
	}
	if err := provider.LoadFromData(css); err != nil {
		log.Printf("Warning: Failed to load styles: %v", err)
		return
	}

	if globalStyleProvider != nil {
		gtk.RemoveProviderForScreen(screen, globalStyleProvider)
	}
	globalStyleProvider = provider
	gtk.AddProviderForScreen(screen, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
}

var customStyleProvider *gtk.CssProvider

// customCSSPlan decides how to move from the installed custom sheet to the
// one named by path. An installed sheet is always dropped so that edits to
// the file, a new path and a removed path all take effect.
func customCSSPlan(installed bool, path string) (remove, load bool) {
	return installed, strings.TrimSpace(path) != ""
}

// ApplyCustomCSS layers the user stylesheet at path over the generated one,
// replacing any earlier custom sheet. An empty path removes it.
func ApplyCustomCSS(path string) {
	screen, err := gdk.ScreenGetDefault()
	if err != nil || screen == nil {
		return
	}

	remove, load := customCSSPlan(customStyleProvider != nil, path)
	if remove {
		gtk.RemoveProviderForScreen(screen, customStyleProvider)
		customStyleProvider = nil
	}
	if !load {
		return
	}

	data, err := os.ReadFile(config.ExpandPath(path))
	if err != nil {
		log.Printf("Warning: Failed to read %s: %v", path, err)
		return
	}

	provider, err := gtk.CssProviderNew()
	if err != nil {
		log.Printf("Warning: Failed to create style provider: %v", err)
		return
	}
	if err := provider.LoadFromData(string(data)); err != nil {
		log.Printf("Warning: Failed to load %s: %v", path, err)
		return
	}
	customStyleProvider = provider
	gtk.AddProviderForScreen(screen, provider, gtk.STYLE_PROVIDER_PRIORITY_USER)
}
