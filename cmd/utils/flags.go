// Package utils contains internal helper functions for the keccak command.
package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Aurorachain/go-keccak/internal/keccakapi"
	"github.com/Aurorachain/go-keccak/metrics"
	"github.com/Aurorachain/go-keccak/params"
	"gopkg.in/urfave/cli.v1"
)

// NewApp creates an app with sane defaults.
func NewApp(gitCommit, usage string) *cli.App {
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Author = ""
	app.Email = ""
	app.Version = params.VersionWithCommit(gitCommit)
	app.Usage = usage
	return app
}

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.

var (
	// General settings
	ConfigFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	LogLevelFlag = cli.StringFlag{
		Name:  "loglevel",
		Usage: "Logging verbosity: debug, info, warn, error",
		Value: "info",
	}
	MetricsEnabledFlag = cli.BoolFlag{
		Name:  metrics.MetricsEnabledFlag,
		Usage: "Enable metrics collection and reporting",
	}

	// Hashing settings
	BitsFlag = cli.IntFlag{
		Name:  "bits",
		Usage: "Digest size in bits (224, 256, 384 or 512)",
		Value: params.DefaultDigestBits,
	}
	RawFlag = cli.BoolFlag{
		Name:  "raw",
		Usage: "Write raw digest bytes instead of hex lines",
	}
	TextFlag = cli.StringFlag{
		Name:  "text",
		Usage: "Hash the given string instead of files",
	}

	// HTTP service settings
	ListenAddrFlag = cli.StringFlag{
		Name:  "addr",
		Usage: "HTTP digest service listening address",
		Value: keccakapi.DefaultConfig.ListenAddr,
	}
	CorsDomainFlag = cli.StringFlag{
		Name:  "corsdomain",
		Usage: "Comma separated list of domains from which to accept cross origin requests (browser enforced)",
		Value: "",
	}
	MaxBodySizeFlag = cli.Int64Flag{
		Name:  "maxbody",
		Usage: "Largest request body the HTTP service hashes, in bytes",
		Value: keccakapi.DefaultConfig.MaxBodySize,
	}

	// Console settings
	DataDirFlag = cli.StringFlag{
		Name:  "datadir",
		Usage: "Directory for the console history (no history is kept if empty)",
	}

	// Benchmark settings
	IterationsFlag = cli.IntFlag{
		Name:  "iterations",
		Usage: "Number of messages hashed per digest size",
		Value: params.BenchIterations,
	}
)

// splitAndTrim splits input separated by a comma
// and trims excessive white space from the substrings.
func splitAndTrim(input string) []string {
	result := strings.Split(input, ",")
	for i, r := range result {
		result[i] = strings.TrimSpace(r)
	}
	return result
}

// SetServerConfig applies the HTTP service flags to cfg.
func SetServerConfig(ctx *cli.Context, cfg *keccakapi.Config) {
	if ctx.GlobalIsSet(ListenAddrFlag.Name) {
		cfg.ListenAddr = ctx.GlobalString(ListenAddrFlag.Name)
	}
	if ctx.GlobalIsSet(CorsDomainFlag.Name) {
		cfg.CorsDomains = splitAndTrim(ctx.GlobalString(CorsDomainFlag.Name))
	}
	if ctx.GlobalIsSet(MaxBodySizeFlag.Name) {
		cfg.MaxBodySize = ctx.GlobalInt64(MaxBodySizeFlag.Name)
	}
}

// MigrateFlags sets the global flag from a local flag when it's set.
// This is a temporary function used for migrating old command/flags to the
// new format.
func MigrateFlags(action func(ctx *cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		for _, name := range ctx.FlagNames() {
			if ctx.IsSet(name) {
				ctx.GlobalSet(name, ctx.String(name))
			}
		}
		return action(ctx)
	}
}
