package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"FitHub/internal/cli/commands"
	"FitHub/internal/config"
	"FitHub/internal/logger"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	// клиент по умолчанию молчит, кроме предупреждений хранилища
	sugar, err := logger.New(cfg.LogLevel, "warn", true)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = sugar.Sync() }()
	commands.SetLogger(sugar)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// dispatcher
	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	_ = sugar.Sync()
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("FitHub CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
