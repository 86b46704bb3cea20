// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/ml-community/internal/adapter"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/MKhiriev/ml-community/models"
)

type command func(ctx context.Context, args []string) error

type App struct {
	api      adapter.APIClient
	out      io.Writer
	errOut   io.Writer
	commands map[string]command
	logger   *logger.Logger
}

// NewApp returns an App printing results to out and usage to errOut.
func NewApp(api adapter.APIClient, out, errOut io.Writer, logger *logger.Logger) *App {
	a := &App{api: api, out: out, errOut: errOut, logger: logger}
	a.commands = map[string]command{
		"register": a.register,
		"login":    a.login,
		"me":       a.me,
		"refresh":  a.refresh,
		"logout":   a.logout,
		"health":   a.health,
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd(ctx, args[1:])
}

func (a *App) usage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(a.errOut, "usage: ml-client [-server addr] [-timeout d] [-token t] <command> [flags]\ncommands: %s\n",
		strings.Join(names, ", "))
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.flagSet("register")
	var request models.RegisterRequest
	fs.StringVar(&request.Username, "username", "", "account username")
	fs.StringVar(&request.Email, "email", "", "account e-mail")
	fs.StringVar(&request.Password, "password", "", "account password")
	fs.StringVar(&request.IGN, "ign", "", "in-game name")
	fs.StringVar(&request.CurrentRank, "rank", "", "current rank")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"username": request.Username, "email": request.Email, "password": request.Password}); err != nil {
		return err
	}

	user, err := a.api.Register(ctx, request)
	if err != nil {
		return err
	}
	return a.printJSON(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"username": *username, "password": *password}); err != nil {
		return err
	}

	token, err := a.api.Login(ctx, *username, *password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, token.AccessToken)
	return err
}

func (a *App) me(ctx context.Context, args []string) error {
	if err := a.flagSet("me").Parse(args); err != nil {
		return err
	}

	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(user)
}

func (a *App) refresh(ctx context.Context, args []string) error {
	if err := a.flagSet("refresh").Parse(args); err != nil {
		return err
	}

	token, err := a.api.Refresh(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, token.AccessToken)
	return err
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := a.flagSet("logout").Parse(args); err != nil {
		return err
	}

	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out, "logged out")
	return err
}

func (a *App) health(ctx context.Context, args []string) error {
	if err := a.flagSet("health").Parse(args); err != nil {
		return err
	}

	health, err := a.api.Health(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(health)
}

func (a *App) printJSON(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// required reports the first empty flag in alphabetical order.
func required(flags map[string]string) error {
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if flags[name] == "" {
			return fmt.Errorf("%w: -%s", ErrMissingFlag, name)
		}
	}
	return nil
}
