package commands

import (
	"context"
	"flag"
	"io"

	"FitHub/internal/cli/api"
	"FitHub/internal/cli/service"
	"FitHub/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the bearer token" }
func (loginCmd) Usage() string       { return "login [--role player|trainer] [--password P] <email>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	role := fs.String("role", string(service.RolePlayer), "account role: player|trainer")
	password := fs.String("password", "", "account password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return ErrUsage
	}
	pw, err := passwordOrPrompt(*password)
	if err != nil {
		return err
	}
	creds := service.Credentials{Email: rest[0], Password: pw, Role: service.Role(*role)}

	return runAuth(cfg, func(svc service.AuthService) (api.Response, error) {
		return svc.Login(ctx, creds)
	})
}

func init() { RegisterCmd(loginCmd{}) }
