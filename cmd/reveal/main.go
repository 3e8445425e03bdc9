package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/reveal/internal/config"
	"github.com/tomz197/reveal/internal/loop"
	revealconfig "github.com/tomz197/reveal/internal/reveal/config"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "reveal",
	})
	if lvl, err := log.ParseLevel(config.GetEnv("REVEAL_LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(lvl)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	err = loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Settings: revealconfig.FromEnv(),
		Logger:   logger,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		logger.Error("reveal error", "err", err)
		os.Exit(1)
	}
}
