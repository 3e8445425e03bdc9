// Package loop mounts the reveal effect on a terminal and runs its frame loop.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/reveal/internal/clock"
	"github.com/tomz197/reveal/internal/draw"
	"github.com/tomz197/reveal/internal/input"
	"github.com/tomz197/reveal/internal/reveal"
	"github.com/tomz197/reveal/internal/reveal/config"
	"github.com/tomz197/reveal/internal/window"
)

// Default page content.
const (
	DefaultTitle  = "R E V E A L"
	DefaultFooter = "press q to quit"
)

// DefaultBody is shown under the title.
var DefaultBody = []string{
	"Everything was here all along.",
	"The tiles just had to get out of the way.",
}

// Options configures one mounted effect.
type Options struct {
	SizeFunc draw.TermSizeFunc // Terminal size source; defaults to stdout
	Settings config.Settings   // Unset fields use config.Defaults()
	Clock    clock.Clock       // Animation clock; defaults to the real clock
	Logger   *log.Logger       // Lifecycle logging; nil discards

	Title  string
	Body   []string
	Footer string
}

// Run mounts the effect on the terminal behind r and w and renders it until
// the user quits, r ends or ctx is cancelled. The terminal is restored before
// Run returns.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) (err error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.Settings = opts.Settings.WithDefaults()
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Body == nil {
		opts.Body = DefaultBody
	}
	if opts.Footer == "" {
		opts.Footer = DefaultFooter
	}

	win, err := window.New(opts.SizeFunc)
	if err != nil {
		return fmt.Errorf("mount reveal: %w", err)
	}

	out := draw.NewChunkWriter(w)
	page := reveal.NewPage(w, opts.Title, opts.Body, opts.Footer)
	mgr := reveal.NewManager(win, reveal.Options{
		Settings: opts.Settings,
		Clock:    opts.Clock,
		Page:     page,
	})
	mgr.Initialize()

	// Registered after the manager so they observe the updated state.
	win.On(window.EventLoad, func(s window.Size) {
		logger.Debug("scene built", "tiles", len(mgr.State().Tiles()), "cols", s.Cols, "rows", s.Rows)
	})
	win.On(window.EventResize, func(s window.Size) {
		// The cleared screen no longer matches the canvas' previous frame.
		draw.ClearScreen(out)
		mgr.State().Canvas.ForceRedraw()
		logger.Debug("resized", "cols", s.Cols, "rows", s.Rows)
	})
	mgr.Animator().OnRevealed = func() {
		logger.Debug("revealed")
	}

	draw.HideCursor(out)
	draw.ClearScreen(out)
	if err := out.Flush(); err != nil {
		return fmt.Errorf("prepare terminal: %w", err)
	}

	defer func() {
		mgr.Teardown()
		win.Close()
		draw.ClearScreen(out)
		draw.ShowCursor(out)
		if ferr := out.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", ferr)
		}
	}()

	stream := input.StartStream(r)
	defer stream.Stop()
	frameTime := opts.Settings.FrameTime()

	for mgr.Running() {
		frameStart := time.Now()

		if ctx.Err() != nil {
			mgr.Stop()
			break
		}

		inp := input.ReadInput(stream)
		if inp.Quit || stream.Closed() {
			mgr.Stop()
			break
		}

		// The first frame plays the part of the window's load event.
		win.Load()
		if _, err := win.Poll(); err != nil {
			return err
		}

		if err := mgr.Frame(); err != nil {
			return err
		}
		if err := mgr.Render(out); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < frameTime {
			select {
			case <-ctx.Done():
			case <-time.After(frameTime - elapsed):
			}
		}
	}

	return nil
}
