package layer

import "testing"

func TestActivationHandlersDeliver(t *testing.T) {
	var events []string
	h := ActivationHandlers{
		WillBecomeActive: func() { events = append(events, "become") },
		WillResignActive: func() { events = append(events, "resign") },
	}

	h.deliver(becomeActive)
	h.deliver(resignActive)
	h.deliver(becomeActive)

	want := []string{"become", "resign", "become"}
	if len(events) != len(want) {
		t.Fatalf("Expected %v, got %v", want, events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], events[i])
		}
	}
}

func TestActivationHandlersToleratesNil(t *testing.T) {
	called := false
	h := ActivationHandlers{WillResignActive: func() { called = true }}

	h.deliver(becomeActive)
	if called {
		t.Error("Become-active must not reach the resign handler")
	}
	h.deliver(resignActive)
	if !called {
		t.Error("Expected resign handler to run")
	}

	ActivationHandlers{}.deliver(becomeActive)
}
