// Package debug holds process level helpers shared by the commands.
package debug

import (
	"runtime/debug"

	"github.com/Aurorachain/go-keccak/log"
)

// LoudPanic panics in a way that gets all goroutine stacks printed on stderr.
func LoudPanic(x interface{}) {
	Exit()
	debug.SetTraceback("all")
	panic(x)
}

// Exit flushes buffered log output. Commands call it before the process ends.
func Exit() {
	log.Sync()
}
