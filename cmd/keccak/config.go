package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"unicode"

	"github.com/Aurorachain/go-keccak/cmd/utils"
	"github.com/Aurorachain/go-keccak/internal/keccakapi"
	"github.com/Aurorachain/go-keccak/params"
	"github.com/naoina/toml"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"
)

var (
	dumpConfigCommand = cli.Command{
		Action:      utils.MigrateFlags(dumpConfig),
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "",
		Flags:       append(append(append(hashFlags, serverFlags...), consoleFlags...), utils.ConfigFileFlag),
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The dumpconfig command shows configuration values.`,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type hashConfig struct {
	Bits int
}

type consoleConfig struct {
	DataDir string `toml:",omitempty"`
	Prompt  string `toml:",omitempty"`
}

type logConfig struct {
	Level string
}

type metricsConfig struct {
	Enabled bool
}

type keccakConfig struct {
	Hash    hashConfig
	Server  keccakapi.Config
	Console consoleConfig
	Log     logConfig
	Metrics metricsConfig
}

func defaultConfig() keccakConfig {
	return keccakConfig{
		Hash:   hashConfig{Bits: params.DefaultDigestBits},
		Server: keccakapi.DefaultConfig,
		Log:    logConfig{Level: "info"},
	}
}

func loadConfig(file string, cfg *keccakConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadConfigFile returns the defaults overlaid with the --config file, if any.
func loadConfigFile(ctx *cli.Context) (keccakConfig, error) {
	cfg := defaultConfig()
	if file := ctx.GlobalString(utils.ConfigFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// makeConfig resolves the effective configuration: defaults, then the
// config file, then command line flags.
func makeConfig(ctx *cli.Context) (keccakConfig, error) {
	cfg, err := loadConfigFile(ctx)
	if err != nil {
		return cfg, err
	}
	if ctx.GlobalIsSet(utils.BitsFlag.Name) {
		cfg.Hash.Bits = ctx.GlobalInt(utils.BitsFlag.Name)
	}
	utils.SetServerConfig(ctx, &cfg.Server)
	if ctx.GlobalIsSet(utils.DataDirFlag.Name) {
		cfg.Console.DataDir = ctx.GlobalString(utils.DataDirFlag.Name)
	}
	if ctx.GlobalIsSet(utils.LogLevelFlag.Name) {
		cfg.Log.Level = ctx.GlobalString(utils.LogLevelFlag.Name)
	}
	if ctx.GlobalIsSet(utils.MetricsEnabledFlag.Name) {
		cfg.Metrics.Enabled = ctx.GlobalBool(utils.MetricsEnabledFlag.Name)
	}
	return cfg, nil
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	io.WriteString(os.Stdout, "# keccak "+params.VersionWithCommit(gitCommit)+"\n\n")
	os.Stdout.Write(out)
	return nil
}
