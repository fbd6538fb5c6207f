package core

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gotk3/gotk3/gtk"

	"github.com/chess10kp/walter/internal/config"
	"github.com/chess10kp/walter/internal/hotkey"
	"github.com/chess10kp/walter/internal/ipc"
	"github.com/chess10kp/walter/internal/launcher"
	"github.com/chess10kp/walter/internal/layer"
	"github.com/chess10kp/walter/internal/platform"
	"github.com/chess10kp/walter/internal/probe"
	"github.com/chess10kp/walter/internal/query"
	"github.com/chess10kp/walter/internal/window"
)

// App is main application
type App struct {
	config     *config.Config
	configPath string
	running    bool
	sigChan    chan os.Signal
	ctx        context.Context
	cancel     context.CancelFunc

	ranker     *launcher.Ranker
	session    *query.Session
	panel      *Panel
	controller *window.Controller
	activation *window.Activation
	panelApp   *panelApplication
	hotkey     *hotkey.Listener
	ipc        *ipc.Server
	probe      *probe.Service
}

// NewApp creates a new application
func NewApp(cfg *config.Config, configPath string) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		config:     cfg,
		configPath: configPath,
		sigChan:    make(chan os.Signal, 1),
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// Run starts the application. It must be called from the main OS thread.
func (a *App) Run() error {
	a.running = true

	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-a.sigChan
		log.Printf("Received signal: %v", sig)
		dispatch(a.Quit)
	}()

	log.Println("Walter starting...")

	if err := a.initialize(); err != nil {
		return err
	}

	gtk.Main()
	return nil
}

func (a *App) initialize() error {
	log.Println("Initializing components...")

	gtk.Init(nil)
	layer.SetAccessory()
	SetupStyles(a.config.Styling)
	ApplyCustomCSS(a.config.Styling.CustomCSS)

	a.ranker = launcher.NewRanker(launcher.SampleActions(), a.config.Search.FuzzySearch, a.config.Search.CacheSize)
	a.session = query.NewSession(a.ranker, a)
	log.Printf("Loaded %d actions", a.ranker.Len())

	panel, err := NewPanel(a.config, a.session)
	if err != nil {
		return fmt.Errorf("failed to create panel: %w", err)
	}
	a.panel = panel
	win := panel.Window()

	surface := &windowSurface{win: win}
	a.controller = window.NewController(monitorScreen{}, surface, glibScheduler{}, window.Options{
		Width:         a.config.Window.Width,
		MinHeight:     a.config.Window.MinHeight,
		Inset:         a.config.Window.Inset,
		Duration:      a.config.Animation.DurationValue(),
		FrameInterval: a.config.Animation.FrameIntervalValue(),
	})
	a.panelApp = &panelApplication{win: win, surface: surface}
	a.activation = window.NewActivation(a.panelApp, a.controller)
	panel.OnContentResize(a.controller.SyncContentSize)

	win.Realize()
	if err := layer.Configure(win, a.config.Window.KeepAbove); err != nil {
		log.Printf("Failed to configure panel window: %v", err)
	}
	if err := a.controller.Place(window.Offscreen); err != nil {
		log.Printf("Failed to place panel: %v", err)
	}

	a.setupActivationSignals(win)

	if a.config.Window.StatusIcon {
		tooltip := fmt.Sprintf("Toggle %s (%s)", a.config.AppName, hotkey.DefaultChord)
		if err := layer.InstallStatusItem(a.config.AppName, tooltip, a.ToggleActivity); err != nil {
			log.Printf("Status icon unavailable: %v", err)
		}
	}

	a.hotkey = hotkey.NewListener(func() { dispatch(a.ToggleActivity) })
	// On macOS registration hops onto the main queue, so it must not block
	// the main thread.
	go func() {
		if err := a.hotkey.Start(); err != nil {
			log.Printf("Failed to start hotkey listener: %v", err)
		}
	}()

	server := ipc.NewServer(a.config.SocketPath, a, dispatch)
	if err := server.Start(); err != nil {
		log.Printf("Failed to start IPC server: %v", err)
	} else {
		a.ipc = server
	}

	a.startProbe(win)
	a.watchConfig()

	log.Println("Initialization complete")
	return nil
}

// setupActivationSignals feeds application activation into the panel. Where
// the toolkit reports no application-level changes, panel focus stands in
// for them.
func (a *App) setupActivationSignals(win *gtk.Window) {
	err := layer.ObserveActivation(layer.ActivationHandlers{
		WillBecomeActive: func() {
			a.panelApp.Reveal()
			a.activation.WillBecomeActive()
		},
		WillResignActive: a.activation.WillResignActive,
	})
	appLevel := err == nil
	if !appLevel {
		log.Printf("Using panel focus for activation: %v", err)
	}

	win.Connect("focus-in-event", func() bool {
		if !appLevel {
			a.activation.WillBecomeActive()
		}
		a.panel.FocusQuery()
		return false
	})
	win.Connect("focus-out-event", func() bool {
		if !appLevel {
			a.activation.WillResignActive()
		}
		return false
	})
	win.Connect("delete-event", func() bool {
		a.activation.Deactivate(nil)
		return true
	})
}

func (a *App) startProbe(parent *gtk.Window) {
	if !a.config.Probe.Enabled {
		return
	}
	inspector, err := platform.NewInspector()
	if err != nil {
		log.Printf("Accessibility probe disabled: %v", err)
		return
	}
	a.probe = probe.NewService(inspector, &permissionAlert{parent: parent}, dispatch, a.config.Probe.IntervalValue())
	a.probe.Start(a.ctx)
}

// watchConfig re-applies styling when the config file changes. Other
// sections take effect on restart.
func (a *App) watchConfig() {
	if a.configPath == "" {
		return
	}
	go func() {
		err := config.Watch(a.ctx, a.configPath, func(cfg *config.Config) {
			dispatch(func() {
				SetupStyles(cfg.Styling)
				ApplyCustomCSS(cfg.Styling.CustomCSS)
			})
		})
		if err != nil {
			log.Printf("Config watcher stopped: %v", err)
		}
	}()
}

// Quit gracefully quits the application
func (a *App) Quit() {
	if !a.running {
		return
	}
	a.running = false

	log.Println("Shutting down...")

	a.cancel()

	if a.ranker != nil {
		if stats := a.ranker.Stats(); stats != nil {
			log.Printf("Rank cache: %d/%d entries, %d hits, %d misses (%.0f%% hit rate)",
				stats.Size, stats.MaxSize, stats.Hits, stats.Misses, stats.HitRate*100)
		}
	}

	if a.hotkey != nil {
		go a.hotkey.Stop()
	}

	if a.ipc != nil {
		a.ipc.Stop()
	}

	layer.StopObservingActivation()
	layer.RemoveStatusItem()

	gtk.MainQuit()
}

// Deactivate hides the panel for the session's cancel.
func (a *App) Deactivate(after func()) {
	a.activation.Deactivate(after)
}

func (a *App) ToggleActivity() {
	a.activation.ToggleActivity()
}

func (a *App) Show() {
	a.activation.Show()
}

func (a *App) Hide() {
	a.activation.Deactivate(nil)
}

func (a *App) Cancel() {
	a.session.Cancel()
}

func (a *App) Next() {
	a.session.Next()
}

func (a *App) SubmitOrRun() {
	a.session.SubmitOrRun()
}

func (a *App) SetQuery(text string) {
	a.session.SetQuery(text)
}
