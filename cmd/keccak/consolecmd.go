package main

import (
	"github.com/Aurorachain/go-keccak/cmd/utils"
	"github.com/Aurorachain/go-keccak/console"
	"gopkg.in/urfave/cli.v1"
)

var (
	consoleFlags = []cli.Flag{utils.DataDirFlag}

	consoleCommand = cli.Command{
		Action:   utils.MigrateFlags(localConsole),
		Name:     "console",
		Usage:    "Start an interactive hashing session",
		Flags:    append(consoleFlags, utils.BitsFlag),
		Category: "CONSOLE COMMANDS",
		Description: `
The keccak console absorbs every line typed into one running digest and
prints the digest of everything entered so far after each line.
Type :help inside the console for its commands.`,
	}
)

func localConsole(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	console, err := console.New(console.Config{
		DataDir: cfg.Console.DataDir,
		Bits:    cfg.Hash.Bits,
		Prompt:  cfg.Console.Prompt,
	})
	if err != nil {
		utils.Fatalf("Failed to start the console: %v", err)
	}
	defer console.Stop()

	console.Welcome()
	console.Interactive()
	return nil
}
