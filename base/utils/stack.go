package utils

import (
	"bytes"
	"runtime/debug"
)

// Stack returns the goroutine stack with the first skip frames removed.
// Each frame takes two lines (function, file:line) after the goroutine header.
func Stack(skip int) []byte {
	stack := debug.Stack()
	lines := bytes.Split(stack, []byte("\n"))
	if len(lines) == 0 {
		return stack
	}
	drop := 1 + 2*skip
	if drop >= len(lines) {
		return stack
	}
	out := append([][]byte{lines[0]}, lines[drop:]...)
	return bytes.Join(out, []byte("\n"))
}
