package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Aurorachain/go-keccak/cmd/utils"
	"github.com/Aurorachain/go-keccak/common"
	"github.com/Aurorachain/go-keccak/log"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"
)

var (
	checkCommand = cli.Command{
		Action:    utils.MigrateFlags(checkSums),
		Name:      "check",
		Usage:     "Verify digests listed in a checksum file",
		ArgsUsage: "<sumfile>",
		Category:  "HASHING COMMANDS",
		Description: `
Reads lines of the form "<hex digest>  <file>", as printed by the default
action, and recomputes every digest. The digest size is inferred from the
length of the hex digest. Exits with an error if any file fails to verify.`,
	}
)

var ErrChecksumMismatch = errors.New("computed checksums did NOT match")

// sizeByHexLength maps the length of a hex digest to the digest size.
var sizeByHexLength = map[int]int{
	56:  224,
	64:  256,
	96:  384,
	128: 512,
}

type checkResult struct {
	total, failed, malformed int
}

func checkSums(ctx *cli.Context) error {
	if len(ctx.Args()) != 1 {
		utils.Fatalf("This command requires a checksum file.")
	}
	name := ctx.Args().First()
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := verifySums(f, colorable.NewColorableStdout())
	if err != nil {
		return err
	}
	if res.malformed > 0 {
		log.Warn("Improperly formatted checksum lines", "file", name, "count", res.malformed)
	}
	if res.failed > 0 {
		return errors.Wrapf(ErrChecksumMismatch, "%d of %d", res.failed, res.total)
	}
	return nil
}

// verifySums checks every line of r and reports each file on out.
func verifySums(r io.Reader, out io.Writer) (checkResult, error) {
	var (
		res     checkResult
		ok      = color.New(color.FgGreen).SprintFunc()
		failed  = color.New(color.FgRed).SprintFunc()
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		want, file, bits, err := parseSumLine(line)
		if err != nil {
			log.Debug("Skipping checksum line", "line", line, "err", err)
			res.malformed++
			continue
		}
		res.total++

		sum, err := hashFile(bits, file)
		switch {
		case err != nil:
			res.failed++
			fmt.Fprintf(out, "%s: %s open or read\n", file, failed("FAILED"))
		case !common.EqualHex(common.Bytes2Hex(sum), want):
			res.failed++
			fmt.Fprintf(out, "%s: %s\n", file, failed("FAILED"))
		default:
			fmt.Fprintf(out, "%s: %s\n", file, ok("OK"))
		}
	}
	return res, scanner.Err()
}

// parseSumLine splits "<hex>  <file>" (or "<hex> *<file>") and infers the
// digest size from the hex length.
func parseSumLine(line string) (digest, file string, bits int, err error) {
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return "", "", 0, errors.New("missing file name")
	}
	digest = line[:i]
	file = strings.TrimLeft(line[i+1:], " ")
	file = strings.TrimPrefix(file, "*")
	if file == "" {
		return "", "", 0, errors.New("missing file name")
	}
	if !common.IsHex(digest) {
		return "", "", 0, errors.Errorf("invalid hex digest %q", digest)
	}
	bits, ok := sizeByHexLength[len(digest)]
	if !ok {
		return "", "", 0, errors.Errorf("no digest size has %d hex characters", len(digest))
	}
	return digest, file, bits, nil
}
