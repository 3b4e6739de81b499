package console

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Aurorachain/go-keccak/crypto/keccak"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	abc256   = "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"
	empty256 = "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"
	empty224 = "f71837502ba8e10837bdd8d365adb85591895602fc552b48b7390abd"
	abc224   = "c30411768506ebe1c2871b1ee2e87d38df342317300a9b97a95ec6a8"
)

func init() {
	color.NoColor = true
}

// hookedPrompter feeds scripted lines to the console.
type hookedPrompter struct {
	scheduler chan string
	history   []string
	closed    bool
}

func (p *hookedPrompter) PromptInput(prompt string) (string, error) {
	line, ok := <-p.scheduler
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

func (p *hookedPrompter) SetHistory(history []string)  { p.history = history }
func (p *hookedPrompter) AppendHistory(command string) { p.history = append(p.history, command) }
func (p *hookedPrompter) ClearHistory()                { p.history = nil }
func (p *hookedPrompter) Close() error                 { p.closed = true; return nil }

type tester struct {
	workspace string
	console   *Console
	prompter  *hookedPrompter
	output    *bytes.Buffer
}

func newTester(t *testing.T, bits int) *tester {
	workspace, err := ioutil.TempDir("", "console-tester-")
	require.NoError(t, err)

	prompter := &hookedPrompter{scheduler: make(chan string)}
	printer := new(bytes.Buffer)

	console, err := New(Config{
		DataDir:  workspace,
		Bits:     bits,
		Prompter: prompter,
		Printer:  printer,
	})
	require.NoError(t, err)
	return &tester{
		workspace: workspace,
		console:   console,
		prompter:  prompter,
		output:    printer,
	}
}

func (env *tester) Close(t *testing.T) {
	require.NoError(t, env.console.Stop())
	os.RemoveAll(env.workspace)
}

func TestWelcome(t *testing.T) {
	tester := newTester(t, 0)
	defer tester.Close(t)

	tester.console.Welcome()
	output := tester.output.String()
	assert.Contains(t, output, "Welcome")
	assert.Contains(t, output, "keccak-256")
}

func TestEvaluateIncremental(t *testing.T) {
	tester := newTester(t, 256)
	defer tester.Close(t)

	require.NoError(t, tester.console.Evaluate(":hash"))
	assert.Contains(t, tester.output.String(), empty256)
	assert.Contains(t, tester.output.String(), "(0 bytes)")

	tester.output.Reset()
	require.NoError(t, tester.console.Evaluate("a"))
	require.NoError(t, tester.console.Evaluate("bc"))
	assert.Contains(t, tester.output.String(), abc256)
	assert.Contains(t, tester.output.String(), "(3 bytes)")
	assert.Equal(t, abc256, tester.console.Digest())
}

func TestEvaluateClear(t *testing.T) {
	tester := newTester(t, 256)
	defer tester.Close(t)

	require.NoError(t, tester.console.Evaluate("something"))
	require.NoError(t, tester.console.Evaluate(":clear"))
	assert.Equal(t, empty256, tester.console.Digest())
	require.NoError(t, tester.console.Evaluate("abc"))
	assert.Equal(t, abc256, tester.console.Digest())
}

func TestEvaluateBits(t *testing.T) {
	tester := newTester(t, 256)
	defer tester.Close(t)

	require.NoError(t, tester.console.Evaluate("xyz"))
	require.NoError(t, tester.console.Evaluate(":bits 224"))
	assert.Equal(t, 224, tester.console.Bits())
	assert.Equal(t, empty224, tester.console.Digest())

	err := tester.console.Evaluate(":bits 100")
	assert.Equal(t, keccak.ErrUnsupportedSize, errors.Cause(err))
	err = tester.console.Evaluate(":bits many")
	assert.Equal(t, keccak.ErrUnsupportedSize, errors.Cause(err))
	assert.Error(t, tester.console.Evaluate(":bits"))
	assert.Equal(t, 224, tester.console.Bits())
}

func TestEvaluateHex(t *testing.T) {
	tester := newTester(t, 224)
	defer tester.Close(t)

	require.NoError(t, tester.console.Evaluate(":hex 0x616263"))
	assert.Equal(t, abc224, tester.console.Digest())
	assert.Error(t, tester.console.Evaluate(":hex 0x6"))
}

func TestEvaluateFile(t *testing.T) {
	tester := newTester(t, 256)
	defer tester.Close(t)

	path := filepath.Join(tester.workspace, "input")
	require.NoError(t, ioutil.WriteFile(path, []byte("abc"), 0600))
	require.NoError(t, tester.console.Evaluate(":file "+path))
	assert.Equal(t, abc256, tester.console.Digest())
	assert.Contains(t, tester.output.String(), "(3 bytes)")

	assert.Error(t, tester.console.Evaluate(":file "+filepath.Join(tester.workspace, "missing")))
}

func TestEvaluateUnknownCommand(t *testing.T) {
	tester := newTester(t, 256)
	defer tester.Close(t)

	err := tester.console.Evaluate(":frobnicate")
	assert.Equal(t, ErrUnknownCommand, errors.Cause(err))
	assert.Equal(t, empty256, tester.console.Digest())
}

func TestUnsupportedBits(t *testing.T) {
	_, err := New(Config{Bits: 128, Prompter: &hookedPrompter{}, Printer: ioutil.Discard})
	assert.Equal(t, keccak.ErrUnsupportedSize, errors.Cause(err))
}

func TestInteractive(t *testing.T) {
	tester := newTester(t, 256)

	done := make(chan struct{})
	go func() {
		tester.console.Interactive()
		close(done)
	}()
	for _, line := range []string{"ab", "   ", "c", ":nope", "exit"} {
		tester.prompter.scheduler <- line
	}
	<-done

	output := tester.output.String()
	assert.Contains(t, output, abc256)
	assert.Contains(t, output, "error:")
	assert.Equal(t, []string{"ab", "c", ":nope"}, tester.prompter.history)

	tester.Close(t)
	assert.True(t, tester.prompter.closed)
}

func TestInteractiveEOF(t *testing.T) {
	tester := newTester(t, 256)
	defer tester.Close(t)

	done := make(chan struct{})
	go func() {
		tester.console.Interactive()
		close(done)
	}()
	tester.prompter.scheduler <- "abc"
	close(tester.prompter.scheduler)
	<-done
	assert.Equal(t, abc256, tester.console.Digest())
}

func TestHistoryPersisted(t *testing.T) {
	tester := newTester(t, 256)
	defer os.RemoveAll(tester.workspace)

	tester.console.history = []string{"one", "two"}
	require.NoError(t, tester.console.Stop())

	content, err := ioutil.ReadFile(filepath.Join(tester.workspace, HistoryFile))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", string(content))

	prompter := &hookedPrompter{}
	_, err = New(Config{DataDir: tester.workspace, Prompter: prompter, Printer: ioutil.Discard})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, prompter.history)

	assert.True(t, strings.HasSuffix(tester.console.histPath, HistoryFile))
}
