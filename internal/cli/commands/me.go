package commands

import (
	"context"
	"fmt"

	"FitHub/internal/config"
)

type meCmd struct{}

func (meCmd) Name() string        { return "me" }
func (meCmd) Description() string { return "Fetch the current user from the server" }
func (meCmd) Usage() string       { return "me" }

func (meCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, _, done, err := openAuth(cfg)
	if err != nil {
		return err
	}
	defer done()

	resp, err := svc.CurrentUser(ctx)
	if err != nil {
		return err
	}
	printJSON(Out, resp.Payload())
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored token and cached user" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, _, done, err := openAuth(cfg)
	if err != nil {
		return err
	}
	defer done()

	svc.Logout(ctx)
	fmt.Fprintln(Out, "Logged out")
	return nil
}

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Print the cached user without contacting the server" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	_, store, done, err := openAuth(cfg)
	if err != nil {
		return err
	}
	defer done()

	user, ok := store.GetUser(ctx)
	if !ok {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	if _, hasToken := store.GetToken(ctx); !hasToken {
		fmt.Fprintln(Out, "Cached user (no session token):")
	}
	printJSON(Out, user)
	return nil
}

func init() {
	RegisterCmd(meCmd{})
	RegisterCmd(logoutCmd{})
	RegisterCmd(whoamiCmd{})
}
