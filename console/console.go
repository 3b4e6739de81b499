// Package console implements an interactive session that hashes input
// incrementally, one line at a time.
package console

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Aurorachain/go-keccak/common"
	"github.com/Aurorachain/go-keccak/crypto/keccak"
	"github.com/Aurorachain/go-keccak/log"
	"github.com/Aurorachain/go-keccak/params"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

var (
	onlyWhitespace = regexp.MustCompile(`^\s*$`)
	exit           = regexp.MustCompile(`^\s*exit\s*;*\s*$`)
)

const HistoryFile = "history"

const DefaultPrompt = "> "

var ErrUnknownCommand = errors.New("unknown console command")

var (
	digestColor = color.New(color.FgGreen).SprintFunc()
	noteColor   = color.New(color.FgYellow).SprintFunc()
)

type Config struct {
	DataDir  string // history is kept in DataDir/history, none if empty
	Bits     int
	Prompt   string
	Prompter UserPrompter
	Printer  io.Writer
}

type Console struct {
	hasher   *keccak.Keccak
	absorbed int
	prompt   string
	prompter UserPrompter
	histPath string
	history  []string
	printer  io.Writer
}

func New(config Config) (*Console, error) {
	if config.Bits == 0 {
		config.Bits = params.DefaultDigestBits
	}
	if config.Prompter == nil {
		config.Prompter = newTerminalPrompter()
	}
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	if config.Printer == nil {
		config.Printer = colorable.NewColorableStdout()
	}
	hasher, err := keccak.New(config.Bits)
	if err != nil {
		return nil, err
	}
	console := &Console{
		hasher:   hasher,
		prompt:   config.Prompt,
		prompter: config.Prompter,
		printer:  config.Printer,
	}
	if config.DataDir != "" {
		if err := os.MkdirAll(config.DataDir, 0700); err != nil {
			return nil, err
		}
		console.histPath = filepath.Join(config.DataDir, HistoryFile)
	}
	console.loadHistory()
	return console, nil
}

func (c *Console) loadHistory() {
	if c.histPath == "" {
		c.prompter.SetHistory(nil)
		return
	}
	if content, err := ioutil.ReadFile(c.histPath); err != nil {
		c.prompter.SetHistory(nil)
	} else {
		c.history = strings.Split(string(content), "\n")
		c.prompter.SetHistory(c.history)
	}
}

func (c *Console) clearHistory() {
	c.history = nil
	c.prompter.ClearHistory()
	if c.histPath == "" {
		return
	}
	if err := os.Remove(c.histPath); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(c.printer, "can't delete history file:", err)
	} else {
		fmt.Fprintln(c.printer, "history file deleted")
	}
}

func (c *Console) Welcome() {
	fmt.Fprintf(c.printer, "Welcome to the Keccak console!\n\n")
	fmt.Fprintf(c.printer, " version: %s\n", params.Version)
	fmt.Fprintf(c.printer, "  digest: keccak-%d\n", c.hasher.Bits())
	fmt.Fprintln(c.printer, "Every line is absorbed as typed; the digest so far is printed after it.")
	fmt.Fprintln(c.printer, "Type :help for commands.")
	fmt.Fprintln(c.printer)
}

// Bits returns the digest size of the running hasher.
func (c *Console) Bits() int { return c.hasher.Bits() }

// Digest returns the digest of everything absorbed so far.
func (c *Console) Digest() string { return c.hasher.HexHash() }

func (c *Console) printDigest() {
	fmt.Fprintf(c.printer, "%s  %s\n", digestColor(c.hasher.HexHash()), noteColor(fmt.Sprintf("(%d bytes)", c.absorbed)))
}

func (c *Console) absorb(data []byte) {
	c.hasher.Update(data)
	c.absorbed += len(data)
}

// Evaluate handles one line of input. Lines starting with a colon are
// commands, everything else is absorbed into the running digest.
func (c *Console) Evaluate(line string) error {
	if !strings.HasPrefix(line, ":") {
		c.absorb([]byte(line))
		c.printDigest()
		return nil
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case ":help":
		fmt.Fprintln(c.printer, ":hash          print the digest of the input so far")
		fmt.Fprintln(c.printer, ":clear         discard the input so far")
		fmt.Fprintln(c.printer, ":bits N        start over with an N bit digest")
		fmt.Fprintln(c.printer, ":hex DATA      absorb hex encoded bytes")
		fmt.Fprintln(c.printer, ":file PATH     absorb the contents of a file")
		fmt.Fprintln(c.printer, ":history       clear the command history")
		fmt.Fprintln(c.printer, "exit           leave the console")
	case ":hash":
		c.printDigest()
	case ":clear":
		c.hasher.Clear()
		c.absorbed = 0
		c.printDigest()
	case ":bits":
		if len(fields) != 2 {
			return errors.New("usage: :bits N")
		}
		bits, err := strconv.Atoi(fields[1])
		if err != nil {
			return errors.Wrapf(keccak.ErrUnsupportedSize, "%q", fields[1])
		}
		hasher, err := keccak.New(bits)
		if err != nil {
			return err
		}
		c.hasher, c.absorbed = hasher, 0
		c.printDigest()
	case ":hex":
		if len(fields) != 2 {
			return errors.New("usage: :hex DATA")
		}
		data, err := common.DecodeHex(fields[1])
		if err != nil {
			return err
		}
		c.absorb(data)
		c.printDigest()
	case ":file":
		if len(fields) != 2 {
			return errors.New("usage: :file PATH")
		}
		if err := c.Execute(fields[1]); err != nil {
			return err
		}
		c.printDigest()
	case ":history":
		c.clearHistory()
	default:
		return errors.Wrapf(ErrUnknownCommand, "%s", fields[0])
	}
	return nil
}

// Execute absorbs the contents of the file at path.
func (c *Console) Execute(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := io.Copy(c.hasher, f)
	c.absorbed += int(n)
	return err
}

func (c *Console) Interactive() {
	var (
		prompt    = c.prompt
		scheduler = make(chan string)
	)

	go func() {
		for {
			line, err := c.prompter.PromptInput(<-scheduler)
			if err != nil {
				if err == liner.ErrPromptAborted {
					scheduler <- ""
					continue
				}
				close(scheduler)
				return
			}
			scheduler <- line
		}
	}()

	abort := make(chan os.Signal, 1)
	signal.Notify(abort, os.Interrupt)
	defer signal.Stop(abort)

	for {
		scheduler <- prompt
		select {
		case <-abort:
			fmt.Fprintln(c.printer, "caught interrupt, exiting")
			return

		case line, ok := <-scheduler:
			if !ok || exit.MatchString(line) {
				return
			}
			if onlyWhitespace.MatchString(line) {
				continue
			}
			if len(c.history) == 0 || line != c.history[len(c.history)-1] {
				c.history = append(c.history, line)
				c.prompter.AppendHistory(line)
			}
			if err := c.Evaluate(line); err != nil {
				fmt.Fprintln(c.printer, color.RedString("error: %v", err))
			}
		}
	}
}

func (c *Console) Stop() error {
	defer c.prompter.Close()
	if c.histPath == "" {
		return nil
	}
	if err := ioutil.WriteFile(c.histPath, []byte(strings.Join(c.history, "\n")), 0600); err != nil {
		return err
	}
	log.Debug("Console history saved", "path", c.histPath, "entries", len(c.history))
	return os.Chmod(c.histPath, 0600)
}
