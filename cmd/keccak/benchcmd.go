package main

import (
	"bytes"
	"fmt"
	"hash"
	"io"
	"time"

	"github.com/Aurorachain/go-keccak/cmd/utils"
	"github.com/Aurorachain/go-keccak/common"
	"github.com/Aurorachain/go-keccak/common/mclock"
	"github.com/Aurorachain/go-keccak/crypto/keccak"
	"github.com/Aurorachain/go-keccak/log"
	"github.com/Aurorachain/go-keccak/metrics"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
	"gopkg.in/urfave/cli.v1"
)

const benchMessage = "The quick brown fox jumps over the lazy dog"

var (
	benchFlags = []cli.Flag{
		utils.IterationsFlag,
	}

	benchCommand = cli.Command{
		Action:   utils.MigrateFlags(bench),
		Name:     "bench",
		Usage:    "Measure hashing speed for every digest size",
		Flags:    benchFlags,
		Category: "HASHING COMMANDS",
		Description: `
Hashes a short message repeatedly with every supported digest size. The 256
and 512 bit sizes are also run through golang.org/x/crypto/sha3 and the
digests compared.`,
	}
)

var ErrReferenceMismatch = errors.New("digest differs from golang.org/x/crypto/sha3")

// references are the legacy Keccak implementations of x/crypto.
var references = map[int]func() hash.Hash{
	256: sha3.NewLegacyKeccak256,
	512: sha3.NewLegacyKeccak512,
}

type benchResult struct {
	name    string
	bits    int
	elapsed time.Duration
	digest  []byte
}

func bench(ctx *cli.Context) error {
	iterations := ctx.GlobalInt(utils.IterationsFlag.Name)
	if iterations <= 0 {
		utils.Fatalf("Iteration count must be positive, got %d", iterations)
	}
	return runBench(colorable.NewColorableStdout(), iterations)
}

func runBench(out io.Writer, iterations int) error {
	title := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %q x %d\n", title("Hashing"), benchMessage, iterations)

	for _, bits := range keccak.SupportedSizes() {
		own := timeKeccak(bits, iterations)
		printResult(out, own, iterations)

		newHash, ok := references[bits]
		if !ok {
			continue
		}
		ref := timeHash(fmt.Sprintf("x/crypto-%d", bits), bits, newHash(), iterations)
		printResult(out, ref, iterations)
		if !bytes.Equal(own.digest, ref.digest) {
			return errors.Wrapf(ErrReferenceMismatch, "%d bits", bits)
		}
	}
	return nil
}

func timeKeccak(bits, iterations int) benchResult {
	var (
		k      = keccak.MustNew(bits)
		msg    = []byte(benchMessage)
		timer  = metrics.NewTimer(fmt.Sprintf("bench/keccak%d", bits))
		digest []byte
		start  = mclock.Now()
	)
	for i := 0; i < iterations; i++ {
		k.Clear()
		k.Update(msg)
		digest = k.Hash()
	}
	elapsed := mclock.Since(start)
	timer.Update(elapsed)
	log.Debug("Benchmarked digest size", "bits", bits, "iterations", iterations, "elapsed", common.PrettyDuration(elapsed))
	return benchResult{name: fmt.Sprintf("keccak-%d", bits), bits: bits, elapsed: elapsed, digest: digest}
}

func timeHash(name string, bits int, h hash.Hash, iterations int) benchResult {
	var (
		msg    = []byte(benchMessage)
		timer  = metrics.NewTimer("bench/" + name)
		digest []byte
		start  = mclock.Now()
	)
	for i := 0; i < iterations; i++ {
		h.Reset()
		h.Write(msg)
		digest = h.Sum(digest[:0])
	}
	elapsed := mclock.Since(start)
	timer.Update(elapsed)
	return benchResult{name: name, bits: bits, elapsed: elapsed, digest: digest}
}

func printResult(out io.Writer, res benchResult, iterations int) {
	perOp := res.elapsed / time.Duration(iterations)
	rate := common.Throughput(int64(len(benchMessage)*iterations), res.elapsed)
	fmt.Fprintf(out, "%-14s %12v %12v/op %14v  %s\n", res.name,
		common.PrettyDuration(res.elapsed), common.PrettyDuration(perOp), rate, common.Bytes2Hex(res.digest))
}
