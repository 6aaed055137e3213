package commands

import (
	"context"
	"fmt"

	"FitHub/internal/config"
)

type configCmd struct{}

func (configCmd) Name() string        { return "config" }
func (configCmd) Description() string { return "Show the resolved backend URL and local store" }
func (configCmd) Usage() string       { return "config" }

func (configCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	source := "platform default"
	if cfg.APIURL != "" {
		source = "API_URL override"
	}
	fmt.Fprintf(Out, "API URL:   %s (%s)\n", cfg.ServerURL, source)
	fmt.Fprintf(Out, "Platform:  %s\n", cfg.Platform)
	fmt.Fprintf(Out, "Store:     %s\n", cfg.StoreBackend)
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		fmt.Fprintf(Out, "Client DB: %s\n", cfg.ClientDBPath)
	case config.StoreFile:
		fmt.Fprintf(Out, "Store dir: %s\n", cfg.StoreDir)
	}
	return nil
}

func init() { RegisterCmd(configCmd{}) }
