package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/orbit-recall/audio"
	"github.com/lixenwraith/orbit-recall/config"
	"github.com/lixenwraith/orbit-recall/engine"
	"github.com/lixenwraith/orbit-recall/input"
	"github.com/lixenwraith/orbit-recall/render"
	"github.com/lixenwraith/orbit-recall/render/renderers"
	"github.com/lixenwraith/orbit-recall/status"
)

var (
	configFlag = flag.String("config", "orbit-recall.toml", "Path to the TOML config file")
	seedFlag   = flag.Int64("seed", 0, "Layout seed, 0 picks one from the clock")
	debugFlag  = flag.Bool("debug", false, "Write JSON debug logs to the log directory")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orbit-recall: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "orbit-recall: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags lets explicit flags win over file and environment
func applyFlags(cfg *config.Config) {
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
}

func run(cfg *config.Config) error {
	logger, closeLog, err := setupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", zap.Int64("seed", seed), zap.Int("frame_rate", cfg.FrameRate), zap.Bool("audio", cfg.Audio.Enabled))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing, from any goroutine
	crash := func(where string) {
		if r := recover(); r != nil {
			screen.Fini()
			stack := debug.Stack()
			logger.Error("crashed", zap.String("where", where), zap.Any("panic", r), zap.ByteString("stack", stack))
			_ = logger.Sync()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mORBIT-RECALL CRASHED (%s): %v\x1b[0m\n", where, r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
			os.Exit(1)
		}
	}
	defer crash("main")

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(render.StyleDefault)

	registry := status.NewRegistry()
	driver := engine.NewDriver(engine.DriverConfig{
		FrameInterval: time.Second / time.Duration(cfg.FrameRate),
		Rand:          rand.New(rand.NewSource(seed)),
		Logger:        logger.Named("engine"),
		Status:        registry,
	})

	sound := audio.NewSoundManager(cfg.AudioConfig(), logger.Named("audio"))
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio initialization failed, continuing without audio", zap.Error(err))
	} else {
		defer sound.Cleanup()
	}
	driver.Subscribe(sound)

	orchestrator := render.NewRenderOrchestrator(screen)
	stats := renderers.Pipeline(orchestrator, registry, cfg.ShowStats)

	handler := input.NewInputHandler(driver, input.Toggles{
		Mute: func() {
			logger.Info("mute toggled", zap.Bool("muted", sound.ToggleMute()))
		},
		Stats: func() {
			stats.SetEnabled(!stats.Enabled())
		},
	}, logger.Named("input"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer crash("driver")
		driver.Run(ctx)
	}()
	defer driver.Stop()

	events := make(chan tcell.Event, 64)
	// Input polling uses a raw goroutine as it interacts directly with the terminal
	go func() {
		defer crash("poller")
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	redraw := func() {
		handler.SetLayout(orchestrator.RenderFrame(driver.Snapshot()))
	}
	redraw()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			if !handler.HandleEvent(ev) {
				logger.Info("quit", zap.Int("level", driver.Snapshot().Level))
				return nil
			}
			redraw()

		case <-driver.Updates():
			redraw()
		}
	}
}
