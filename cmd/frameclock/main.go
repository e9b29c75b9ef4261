package main

import (
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/frameclock/core"
	"github.com/lixenwraith/frameclock/engine"
	"github.com/lixenwraith/frameclock/status"
)

var (
	rateFlag  = flag.Int("rate", 60, "Target refresh rate in frames per second")
	scaleFlag = flag.Float64("scale", 1.0, "Initial simulation speed factor")
	muteFlag  = flag.Bool("mute", false, "Disable the metronome tick")
)

const tickFrequency = 880 // Hz

// metronome beats once per whole simulated second, so freezing silences it
// and scaling changes its tempo audibly
type metronome struct {
	sampleRate beep.SampleRate
	enabled    bool
	lastBeat   int64
}

func newMetronome(mute bool) *metronome {
	m := &metronome{sampleRate: beep.SampleRate(44100), lastBeat: 0}
	if mute {
		return m
	}
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, demo can run without sound
		fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
		return m
	}
	m.enabled = true
	return m
}

func (m *metronome) update(gameTime time.Duration) {
	beat := int64(gameTime / time.Second)
	if beat == m.lastBeat {
		return
	}
	m.lastBeat = beat
	if !m.enabled {
		return
	}
	sine, err := generators.SineTone(m.sampleRate, tickFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(m.sampleRate.N(50*time.Millisecond), sine))
}

func (m *metronome) close() {
	if m.enabled {
		speaker.Close()
	}
}

type app struct {
	screen  tcell.Screen
	keeper  *engine.TimeKeeper
	reg     *status.Registry
	beats   *metronome
	live    *engine.ModalContext
	fixed   bool
	quit    bool
	message string
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func (a *app) draw() {
	a.screen.Clear()

	res := a.keeper.Snapshot()

	label := tcell.StyleDefault.Foreground(tcell.ColorGray)
	value := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	warn := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	drawText(a.screen, 2, 1, value.Bold(true), "frameclock")
	drawText(a.screen, 2, 2, label, fmt.Sprintf("startup  %s", a.keeper.StartupTime().Format(time.RFC3339)))

	rows := []struct {
		name string
		text string
	}{
		{"MainTimer", res.MainTimer.Truncate(time.Millisecond).String()},
		{"GameTimer", res.GameTime.Truncate(time.Millisecond).String()},
		{"DeltaTime", fmt.Sprintf("%.4fs", a.keeper.DeltaTime())},
		{"TimeMult", fmt.Sprintf("%.3f", res.TimeMult)},
		{"TimeScale", fmt.Sprintf("%.2f", a.keeper.TimeScale())},
		{"FPS", fmt.Sprintf("%d", res.FPS)},
		{"FrameCount", fmt.Sprintf("%d", res.FrameNumber)},
		{"FreezeDepth", fmt.Sprintf("%d", a.keeper.FreezeDepth())},
	}
	for i, row := range rows {
		drawText(a.screen, 2, 4+i, label, fmt.Sprintf("%-12s", row.name))
		drawText(a.screen, 15, 4+i, value, row.text)
	}

	y := 4 + len(rows) + 1
	if a.keeper.IsFrozen() {
		drawText(a.screen, 2, y, warn, "FROZEN")
	}
	if a.fixed {
		drawText(a.screen, 10, y, warn, "FIXED-STEP")
	}
	if !a.live.Live() {
		drawText(a.screen, 22, y, warn, "DESIGN-TIME")
	}

	// Profiler metrics straight from the registry
	y += 2
	a.reg.Ints.Range(func(key string, ptr *atomic.Int64) {
		drawText(a.screen, 2, y, label, fmt.Sprintf("%-18s %d", key, ptr.Load()))
		y++
	})
	a.reg.Floats.Range(func(key string, ptr *status.AtomicFloat) {
		drawText(a.screen, 2, y, label, fmt.Sprintf("%-18s %.3f", key, ptr.Get()))
		y++
	})

	y++
	drawText(a.screen, 2, y, label, "f freeze  r resume  R hard resume  +/- scale  0 halt  1 reset")
	drawText(a.screen, 2, y+1, label, "x fixed-step  l live/design  q quit")
	if a.message != "" {
		drawText(a.screen, 2, y+3, warn, a.message)
	}

	a.screen.Show()
}

func (a *app) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		a.quit = true
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}

	switch ev.Rune() {
	case 'q':
		a.quit = true
	case 'f':
		a.keeper.Freeze()
		a.message = fmt.Sprintf("freeze depth %d", a.keeper.FreezeDepth())
	case 'r':
		a.keeper.Resume()
		a.message = fmt.Sprintf("freeze depth %d", a.keeper.FreezeDepth())
	case 'R':
		a.keeper.ResumeHard()
		a.message = "hard resume, freeze depth 0"
	case '+', '=':
		a.keeper.SetTimeScale(a.keeper.TimeScale() + 0.25)
		a.message = fmt.Sprintf("scale %.2f", a.keeper.TimeScale())
	case '-', '_':
		a.keeper.SetTimeScale(a.keeper.TimeScale() - 0.25)
		a.message = fmt.Sprintf("scale %.2f", a.keeper.TimeScale())
	case '0':
		a.keeper.SetTimeScale(0)
		a.message = "scale 0 (simulation halted without freeze)"
	case '1':
		a.keeper.SetTimeScale(1.0)
		a.message = "scale 1.0"
	case 'x':
		a.fixed = !a.fixed
		a.message = fmt.Sprintf("fixed-step %v", a.fixed)
	case 'l':
		a.live.SetLive(!a.live.Live())
		a.message = fmt.Sprintf("live %v", a.live.Live())
	}
}

func (a *app) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	})

	for !a.quit {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a.handleKey(ev)
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case <-ticker.C:
			a.keeper.AdvanceFrame(a.fixed)
			a.beats.update(a.keeper.GameTimer())
			a.draw()
		}
	}
}

func main() {
	flag.Parse()

	if *rateFlag <= 0 {
		fmt.Fprintf(os.Stderr, "invalid -rate %d: must be positive\n", *rateFlag)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace prints
	core.SetCrashCleanup(func() {
		screen.Fini()
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	interval := time.Second / time.Duration(*rateFlag)

	reg := status.NewRegistry()
	provider := engine.NewMonotonicTimeProvider()
	live := engine.NewModalContext(true)

	keeper := engine.NewTimeKeeper(provider)
	keeper.SetNominalFrameDuration(interval)
	keeper.SetProfileSink(engine.NewStatusSink(reg, provider))
	keeper.SetRunContext(live)
	keeper.SetTimeScale(*scaleFlag)

	beats := newMetronome(*muteFlag)
	defer beats.close()

	a := &app{
		screen: screen,
		keeper: keeper,
		reg:    reg,
		beats:  beats,
		live:   live,
	}
	a.run(interval)
}
