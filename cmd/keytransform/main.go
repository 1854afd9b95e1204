package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/bartossh/KeypairTransform/configuration"
	"github.com/bartossh/KeypairTransform/keypair"
	"github.com/bartossh/KeypairTransform/logging"
	"github.com/bartossh/KeypairTransform/logo"
	"github.com/bartossh/KeypairTransform/stderrwriter"
)

const version = "0.1.0"

const usage = `Transforms Ed25519 keypair between the [b0,b1,...,b63] byte array and the base58 string.
Byte array is printed as base58 string and base58 string is printed as byte array.
Result is printed to stdout, errors and logs are printed to stderr and exit with status 1.`

var errArgument = errors.New("please provide exactly one keypair argument, eg. keytransform '[1,2,...,64]'")

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprint(os.Stderr, pterm.Error.Sprintln(err.Error()))
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	var config string
	var verbose bool

	configurator := func() (configuration.Configuration, error) {
		if config == "" {
			return configuration.Configuration{}, nil
		}

		cfg, err := configuration.Read(config)
		if err != nil {
			return cfg, err
		}

		return cfg, nil
	}

	transformer := func(cCtx *cli.Context) (keypair.Transformer, string, error) {
		if cCtx.NArg() != 1 {
			return keypair.Transformer{}, "", errArgument
		}

		cfg, err := configurator()
		if err != nil {
			return keypair.Transformer{}, "", err
		}

		level, err := logging.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return keypair.Transformer{}, "", err
		}
		if verbose {
			level = logging.LevelDebug
		}

		if cfg.DisplayLogo {
			logo.Display(stderr)
		}

		callbackOnErr := func(err error) {
			fmt.Fprintln(stderr, "Error with logger: ", err)
		}
		log := logging.New(callbackOnErr, level, stderrwriter.Logger{W: stderr})

		return keypair.New(log), cCtx.Args().First(), nil
	}

	return &cli.App{
		Name:      "keytransform",
		Usage:     usage,
		Version:   version,
		ArgsUsage: "<keypair>",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Load configuration from `FILE`",
				Destination: &config,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "Log every transformation stage to stderr",
				Destination: &verbose,
			},
		},
		Action: func(cCtx *cli.Context) error {
			t, raw, err := transformer(cCtx)
			if err != nil {
				return err
			}
			res, err := t.Transform(raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, res.Output)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "address",
				Aliases:   []string{"a"},
				Usage:     "Prints base58 public key of the keypair given in any of the representations.",
				ArgsUsage: "<keypair>",
				Action: func(cCtx *cli.Context) error {
					t, raw, err := transformer(cCtx)
					if err != nil {
						return err
					}
					res, err := t.Transform(raw)
					if err != nil {
						return err
					}
					fmt.Fprintln(stdout, res.Address)
					return nil
				},
			},
			{
				Name:  "about",
				Usage: "Displays information about the tool.",
				Action: func(_ *cli.Context) error {
					logo.Display(stdout)
					fmt.Fprintln(stdout, pterm.Info.Sprintf("keytransform version %s", version))
					return nil
				},
			},
		},
	}
}
