// keccak is the command line interface to the Keccak hash family.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"

	"github.com/Aurorachain/go-keccak/cmd/utils"
	"github.com/Aurorachain/go-keccak/common"
	"github.com/Aurorachain/go-keccak/crypto/keccak"
	"github.com/Aurorachain/go-keccak/internal/debug"
	"github.com/Aurorachain/go-keccak/log"
	"github.com/Aurorachain/go-keccak/metrics"
	"gopkg.in/urfave/cli.v1"
)

const (
	clientIdentifier = "keccak"
)

var (
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""

	app = utils.NewApp(gitCommit, "the Keccak hash family command line interface")

	hashFlags = []cli.Flag{
		utils.BitsFlag,
		utils.RawFlag,
		utils.TextFlag,
	}

	serverFlags = []cli.Flag{
		utils.ListenAddrFlag,
		utils.CorsDomainFlag,
		utils.MaxBodySizeFlag,
	}

	globalFlags = []cli.Flag{
		utils.ConfigFileFlag,
		utils.LogLevelFlag,
		utils.MetricsEnabledFlag,
	}
)

func init() {
	app.Action = keccakSum
	app.HideVersion = true
	app.ArgsUsage = "[file...]"
	app.Copyright = "Copyright 2019 The go-keccak Authors"
	app.Commands = []cli.Command{
		checkCommand,
		benchCommand,
		serveCommand,
		consoleCommand,
		versionCommand,
		dumpConfigCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Flags = append(app.Flags, hashFlags...)
	app.Flags = append(app.Flags, serverFlags...)
	app.Flags = append(app.Flags, consoleFlags...)
	app.Flags = append(app.Flags, benchFlags...)
	app.Flags = append(app.Flags, globalFlags...)

	app.Before = func(ctx *cli.Context) error {
		runtime.GOMAXPROCS(runtime.NumCPU())

		// A broken config file is reported by the command that loads it.
		cfg, err := loadConfigFile(ctx)
		if err != nil {
			cfg = defaultConfig()
		}
		if ctx.GlobalIsSet(utils.LogLevelFlag.Name) {
			cfg.Log.Level = ctx.GlobalString(utils.LogLevelFlag.Name)
		}
		if !log.ValidLevel(cfg.Log.Level) {
			return fmt.Errorf("unknown log level %q", cfg.Log.Level)
		}
		log.SetLevel(cfg.Log.Level)

		if cfg.Metrics.Enabled && !metrics.Enabled {
			log.Info("Enabling metrics collection")
			metrics.Enabled = true
		}
		return nil
	}

	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// keccakSum is the default action. It hashes --text, the given files, or
// standard input and prints one digest per input.
func keccakSum(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	raw := ctx.GlobalBool(utils.RawFlag.Name)
	if ctx.GlobalIsSet(utils.TextFlag.Name) {
		k, err := keccak.New(cfg.Hash.Bits)
		if err != nil {
			return err
		}
		k.UpdateString(ctx.GlobalString(utils.TextFlag.Name))
		if raw {
			_, err = out.Write(k.Hash())
			return err
		}
		_, err = fmt.Fprintln(out, k.HexHash())
		return err
	}

	files := ctx.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		sum, err := hashFile(cfg.Hash.Bits, name)
		if err != nil {
			return err
		}
		if raw {
			if _, err := out.Write(sum); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "%s  %s\n", common.Bytes2Hex(sum), name)
	}
	return nil
}

// hashFile hashes the named file, or standard input for "-".
func hashFile(bits int, name string) ([]byte, error) {
	k, err := keccak.New(bits)
	if err != nil {
		return nil, err
	}
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	n, err := io.Copy(k, bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	log.Debug("Hashed input", "name", name, "bytes", n, "bits", bits)
	return k.Hash(), nil
}
