// Command petctl maneja mascotas contra el API HTTP.
//
//	petctl create [-name Milo]
//	petctl state -pet <id>
//	petctl list
//	petctl act -pet <id> -action treat [-weight 1] [-happiness 1] [-energy 1]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"virtual-pet/internal/adapters/petapi"
	"virtual-pet/internal/platform/httpclient"
)

type cliConfig struct {
	Addr    string        `env:"PETCTL_ADDR" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"PETCTL_TIMEOUT" envDefault:"10s"`
}

var errUsage = errors.New("usage: petctl [-addr URL] <create|state|list|act> [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "petctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	var cfg cliConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("petctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "base URL del API")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout por request")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	hc, err := httpclient.New(cfg.Addr, cfg.Timeout, nil)
	if err != nil {
		return err
	}
	c := petapi.New(hc)

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "create":
		return runCreate(ctx, c, rest, out)
	case "state":
		return runState(ctx, c, rest, out)
	case "list":
		return runList(ctx, c, out)
	case "act":
		return runAct(ctx, c, rest, out)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func runCreate(ctx context.Context, c *petapi.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "nombre (vacío = default del servidor)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := c.Create(ctx, *name)
	if err != nil {
		return err
	}
	return printJSON(out, p)
}

func runState(ctx context.Context, c *petapi.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("state", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	petID := fs.String("pet", "", "ID de la mascota")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *petID == "" {
		return errors.New("state: -pet is required")
	}

	p, err := c.Get(ctx, *petID)
	if err != nil {
		return err
	}
	return printJSON(out, p)
}

func runList(ctx context.Context, c *petapi.Client, out io.Writer) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, items)
}

func runAct(ctx context.Context, c *petapi.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("act", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	petID := fs.String("pet", "", "ID de la mascota")
	action := fs.String("action", "", "treat, play, exercise, sleep u otra")
	weight := fs.Int("weight", 0, "delta de weight")
	happiness := fs.Int("happiness", 0, "delta de happiness")
	energy := fs.Int("energy", 0, "delta de energy")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *petID == "" {
		return errors.New("act: -pet is required")
	}

	res, err := c.Act(ctx, *petID, *action, petapi.Deltas{
		"weight":    *weight,
		"happiness": *happiness,
		"energy":    *energy,
	})
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
