package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"FitHub/internal/cli/api"
	"FitHub/internal/cli/service"
	"FitHub/internal/config"
)

type registerPlayerCmd struct{}

func (registerPlayerCmd) Name() string        { return "register-player" }
func (registerPlayerCmd) Description() string { return "Register a player account and store the session" }
func (registerPlayerCmd) Usage() string {
	return "register-player [--password P] [--age N] [--bodyweight KG] [--height CM] [--sex S] <email> <first-name> <last-name>"
}

func (registerPlayerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	// флаги разрешены только перед позиционными аргументами
	fs := flag.NewFlagSet("register-player", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	password := fs.String("password", "", "account password (prompted when empty)")
	age := fs.Int("age", 0, "age in years")
	bodyweight := fs.Float64("bodyweight", 0, "bodyweight")
	height := fs.Float64("height", 0, "height")
	sex := fs.String("sex", "", "sex at birth")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) != 3 {
		return ErrUsage
	}

	p := service.PlayerRegistration{Email: rest[0], FirstName: rest[1], LastName: rest[2]}
	// необязательные поля отправляются, только если флаг был указан
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "age":
			p.Age = age
		case "bodyweight":
			p.Bodyweight = bodyweight
		case "height":
			p.Height = height
		case "sex":
			s := strings.TrimSpace(*sex)
			p.SexAtBirth = &s
		}
	})

	pw, err := passwordOrPrompt(*password)
	if err != nil {
		return err
	}
	p.Password = pw

	return runAuth(cfg, func(svc service.AuthService) (api.Response, error) {
		return svc.RegisterPlayer(ctx, p)
	})
}

type registerTrainerCmd struct{}

func (registerTrainerCmd) Name() string        { return "register-trainer" }
func (registerTrainerCmd) Description() string { return "Register a trainer account and store the session" }
func (registerTrainerCmd) Usage() string {
	return "register-trainer [--password P] <email> <first-name> <last-name>"
}

func (registerTrainerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("register-trainer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	password := fs.String("password", "", "account password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) != 3 {
		return ErrUsage
	}
	pw, err := passwordOrPrompt(*password)
	if err != nil {
		return err
	}
	p := service.TrainerRegistration{Email: rest[0], Password: pw, FirstName: rest[1], LastName: rest[2]}

	return runAuth(cfg, func(svc service.AuthService) (api.Response, error) {
		return svc.RegisterTrainer(ctx, p)
	})
}

func passwordOrPrompt(pw string) (string, error) {
	if pw != "" {
		return pw, nil
	}
	return promptPassword(Prompt)
}

// runAuth выполняет операцию, печатает ответ и сообщает, установлена ли сессия.
func runAuth(cfg *config.Config, op func(service.AuthService) (api.Response, error)) error {
	svc, _, done, err := openAuth(cfg)
	if err != nil {
		return err
	}
	defer done()

	resp, err := op(svc)
	if err != nil {
		return err
	}
	printJSON(Out, resp.Payload())
	if _, ok := resp.(api.AuthSuccess); ok {
		fmt.Fprintln(Out, "Session stored")
	} else {
		fmt.Fprintln(Out, "No session token in response")
	}
	return nil
}

func init() {
	RegisterCmd(registerPlayerCmd{})
	RegisterCmd(registerTrainerCmd{})
}
