package bounce

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/platform/term"
)

// failingScreen is a terminal whose Init fails, as on a missing tty.
type failingScreen struct {
	tcell.Screen
}

func (failingScreen) Init() error { return errors.New("open /dev/tty: no such device or address") }

func TestNewReportsTerminalInitFailure(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("New panicked: %v", r)
		}
	}()
	demo, err := New(DefaultConfig(), term.New(failingScreen{}))
	if err == nil {
		_ = demo.Close()
		t.Fatal("New should fail when the terminal cannot initialize")
	}
}
