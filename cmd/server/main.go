// Package main implements the contacts-api command: the HTTP server for the
// contacts address book plus the operational subcommands that share its
// configuration (migrations, password hashing, token issuing).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCLI().Run(ctx, os.Args); err != nil {
		stop()
		charmlog.Fatal("application error", "err", err)
	}
}

// newCLI builds the command tree. Running it without a subcommand serves
// the API.
func newCLI() *cli.Command {
	return &cli.Command{
		Name:  "contacts-api",
		Usage: "Contacts address book API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a configuration file (yaml, json or toml)",
				Sources: cli.EnvVars("CONTACTS_CONFIG"),
			},
		},
		Action: runServe,
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			hashPasswordCommand(),
			tokenCommand(),
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP server",
		Action: runServe,
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "Apply all pending migrations",
				Action: runMigrateUp,
			},
			{
				Name:   "down",
				Usage:  "Roll back the most recent migration",
				Action: runMigrateDown,
			},
			{
				Name:   "status",
				Usage:  "List migrations and whether they are applied",
				Action: runMigrateStatus,
			},
			{
				Name:   "version",
				Usage:  "Print the current schema version",
				Action: runMigrateVersion,
			},
		},
	}
}

func hashPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:  "hash-password",
		Usage: "Read a password and print its bcrypt digest",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "cost",
				Usage: "bcrypt cost factor",
				Value: bcrypt.DefaultCost,
			},
		},
		Action: runHashPassword,
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Issue a signed token for a user id",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "user-id",
				Usage:    "Subject of the token",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "refresh",
				Usage: "Use the refresh token lifetime",
			},
		},
		Action: runToken,
	}
}
