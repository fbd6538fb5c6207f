// Package hotkey registers the global chord that toggles the panel.
package hotkey

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"golang.design/x/hotkey"
)

// Chord describes a modifier+key combination for display.
type Chord struct {
	Modifiers []string
	Key       string
}

func (c Chord) String() string {
	return strings.Join(append(append([]string{}, c.Modifiers...), c.Key), "+")
}

// registrar is the subset of *hotkey.Hotkey the listener drives.
type registrar interface {
	Register() error
	Unregister() error
	Keydown() <-chan hotkey.Event
}

// Listener calls onPress every time the chord is pressed, whichever
// application has focus. onPress runs on the listener goroutine; callers
// dispatch to the UI thread themselves.
type Listener struct {
	chord   Chord
	hk      registrar
	onPress func()
	stop    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	active  bool
}

// NewListener creates a listener for the fixed panel chord.
func NewListener(onPress func()) *Listener {
	return newListener(DefaultChord, hotkey.New(defaultModifiers, hotkey.KeyF), onPress)
}

func newListener(chord Chord, hk registrar, onPress func()) *Listener {
	return &Listener{chord: chord, hk: hk, onPress: onPress}
}

// Start registers the chord with the OS.
func (l *Listener) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active {
		return fmt.Errorf("hotkey %s already registered", l.chord)
	}
	if err := l.hk.Register(); err != nil {
		return fmt.Errorf("failed to register hotkey %s: %w", l.chord, err)
	}

	l.active = true
	l.stop = make(chan struct{})
	l.wg.Add(1)
	go l.listen(l.hk.Keydown(), l.stop)

	log.Printf("Registered global hotkey %s", l.chord)
	return nil
}

func (l *Listener) listen(keydown <-chan hotkey.Event, stop <-chan struct{}) {
	defer l.wg.Done()
	for {
		select {
		case _, ok := <-keydown:
			if !ok {
				return
			}
			l.onPress()
		case <-stop:
			return
		}
	}
}

// Stop unregisters the chord and waits for the listener goroutine.
func (l *Listener) Stop() {
	l.mu.Lock()
	if !l.active {
		l.mu.Unlock()
		return
	}
	l.active = false
	close(l.stop)
	if err := l.hk.Unregister(); err != nil {
		log.Printf("Failed to unregister hotkey %s: %v", l.chord, err)
	}
	l.mu.Unlock()

	l.wg.Wait()
}
