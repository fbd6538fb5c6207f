// Package probe periodically logs what the accessibility layer reports
// about the frontmost application. It is diagnostic only: nothing it
// collects feeds back into the panel.
package probe

import (
	"context"
	"fmt"
	"log"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chess10kp/walter/internal/platform"
)

const DefaultInterval = 2 * time.Second

const manualInstructions = `Accessibility permission is required for the probe.
Open System Settings > Privacy & Security > Accessibility, add the walter
binary (or the terminal it was launched from) and restart walter.`

// Alerter asks the user to grant accessibility permission.
type Alerter interface {
	PresentPermissionAlert()
}

// Dispatcher runs fn on the UI thread.
type Dispatcher func(fn func())

type Report struct {
	App             platform.App      `yaml:"app"`
	Windows         []platform.Window `yaml:"windows"`
	Attributes      []string          `yaml:"attributes"`
	ElementAtOrigin *platform.Element `yaml:"element_at_origin"`
	BundleWindows   []platform.Window `yaml:"bundle_windows,omitempty"`
	Errors          []string          `yaml:"errors,omitempty"`
}

type Service struct {
	inspector platform.Inspector
	alerter   Alerter
	dispatch  Dispatcher
	interval  time.Duration
	logger    *log.Logger

	// main thread only
	alertShown bool
}

func NewService(inspector platform.Inspector, alerter Alerter, dispatch Dispatcher, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Service{
		inspector: inspector,
		alerter:   alerter,
		dispatch:  dispatch,
		interval:  interval,
		logger:    log.New(log.Writer(), "[PROBE] ", log.LstdFlags),
	}
}

func (s *Service) Interval() time.Duration { return s.interval }

// Start ticks until ctx is cancelled. Each tick is dispatched to the UI
// thread.
func (s *Service) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Printf("Probe started, interval %s", s.interval)
		for {
			select {
			case <-ctx.Done():
				s.logger.Printf("Probe stopped")
				return
			case <-ticker.C:
				s.dispatch(s.Tick)
			}
		}
	}()
}

// Tick runs one probe pass. Without permission it presents the alert once
// and skips probing.
func (s *Service) Tick() {
	if !s.inspector.IsTrusted() {
		if !s.alertShown {
			s.alertShown = true
			if s.alerter != nil {
				s.alerter.PresentPermissionAlert()
			}
			s.logger.Print(manualInstructions)
		}
		return
	}

	app, err := s.inspector.FrontmostApp()
	if err != nil {
		s.logger.Printf("Skipping probe: %v", err)
		return
	}

	out, err := yaml.Marshal(s.Collect(app))
	if err != nil {
		s.logger.Printf("Failed to encode probe report: %v", err)
		return
	}
	s.logger.Printf("%s\n%s", app, out)
}

// Collect queries everything the probe reports for app. Individual
// failures are recorded in the report and do not stop the pass.
func (s *Service) Collect(app platform.App) Report {
	report := Report{App: app}
	fail := func(what string, err error) {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", what, err))
	}

	if windows, err := s.inspector.Windows(app.PID); err != nil {
		fail("windows", err)
	} else {
		report.Windows = windows
	}

	if attrs, err := s.inspector.AttributeNames(app.PID); err != nil {
		fail("attributes", err)
	} else {
		report.Attributes = attrs
	}

	if el, err := s.inspector.ElementAt(app.PID, 0, 0); err != nil {
		fail("element at origin", err)
	} else {
		report.ElementAtOrigin = el
	}

	if app.BundleID != "" {
		if windows, err := s.inspector.WindowsForBundle(app.BundleID); err != nil {
			fail("bundle windows", err)
		} else {
			report.BundleWindows = windows
		}
	}

	return report
}
