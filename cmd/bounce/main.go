// Bounce opens a window and slides a red square across it. Space reverses
// the square, the window edges bounce it, and escape quits.
//
// Usage:
//
//	bounce [-config bounce.toml] [-driver window|term|headless] [-sound]
//	       [-flash] [-fps] [-debug] [-ecs] [-script steps.json] [-frames n]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/platform"
	"github.com/phanxgames/platform/audio"
	"github.com/phanxgames/platform/ecs"
	"github.com/phanxgames/platform/internal/bounce"
	"github.com/phanxgames/platform/term"
)

type options struct {
	configPath string
	driver     string
	sound      bool
	flash      bool
	showFPS    bool
	debug      bool
	ecs        bool
	script     string
	frames     int
	shotDir    string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the demo and returns the process exit status. Any failure
// is printed to stderr as "Error: <message>".
func run(args []string, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err == nil {
		err = execute(o)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("bounce", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.configPath, "config", "", "TOML file overriding the default settings")
	fs.StringVar(&o.driver, "driver", "window", "backend: window, term or headless")
	fs.BoolVar(&o.sound, "sound", false, "play a tone on every edge bounce")
	fs.BoolVar(&o.flash, "flash", false, "flash the square on every edge bounce")
	fs.BoolVar(&o.showFPS, "fps", false, "show an FPS overlay (window driver only)")
	fs.BoolVar(&o.debug, "debug", false, "log per-frame present stats to stderr")
	fs.BoolVar(&o.ecs, "ecs", false, "forward events into a donburi world and log their counts on exit")
	fs.StringVar(&o.script, "script", "", "JSON test script to drive the demo")
	fs.IntVar(&o.frames, "frames", 0, "stop after this many frames (headless driver only)")
	fs.StringVar(&o.shotDir, "screenshots", "screenshots", "directory for scripted screenshots")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.frames < 0 {
		return o, fmt.Errorf("-frames must not be negative, got %d", o.frames)
	}
	if o.frames > 0 && o.driver != "headless" {
		return o, fmt.Errorf("-frames only applies to -driver headless, not %q", o.driver)
	}
	return o, nil
}

func execute(o options) error {
	cfg := bounce.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = bounce.LoadConfig(o.configPath); err != nil {
			return err
		}
	}
	if o.flash && cfg.Rect.FlashSeconds == 0 {
		cfg.Rect.FlashSeconds = 0.25
	}

	driver, err := newDriver(o)
	if err != nil {
		return err
	}

	demo, err := bounce.New(cfg, driver)
	if err != nil {
		return err
	}
	defer demo.Close()

	win := demo.Window()
	win.SetDebugMode(o.debug)
	win.ScreenshotDir = o.shotDir

	if o.script != "" {
		data, err := os.ReadFile(o.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := platform.LoadTestScript(data)
		if err != nil {
			return err
		}
		win.SetTestRunner(runner)
	}

	if o.ecs {
		world := donburi.NewWorld()
		win.SetEventSink(ecs.NewDonburiSink(world))
		counter := ecs.NewEventCounter(world)
		demo.AfterFrame = func() { ecs.Process(world) }
		defer func() {
			ecs.Process(world)
			log.Printf("bounce: ecs saw %d events (%s)", counter.Total(), counter)
		}()
	}

	if o.sound {
		p, err := audio.NewPlayer()
		if err != nil {
			// Non-fatal, the demo runs without sound.
			log.Printf("bounce: audio disabled: %v", err)
		} else {
			defer p.Close()
			demo.Sound = p
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return platform.Main(driver, func() error {
		return demo.Run(ctx)
	})
}

func newDriver(o options) (platform.Driver, error) {
	switch o.driver {
	case "window":
		d := platform.NewEbitenDriver()
		d.ShowFPS = o.showFPS
		return d, nil
	case "term":
		return term.NewDriver()
	case "headless":
		d := platform.NewHeadlessDriver()
		d.MaxFrames = o.frames
		return d, nil
	default:
		return nil, fmt.Errorf("unknown driver %q (want window, term or headless)", o.driver)
	}
}
