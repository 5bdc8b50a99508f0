package internal

import (
	"fmt"
)

// slotSize is the size in bytes of one pushed value.
const slotSize = 8

type instructionWriter interface {
	writeInstruction(instruction string)
}

// StackTracker maps variable names to runtime stack slots. Every push and pop the generated
// program will execute goes through it, so depth always equals pushes minus pops emitted so far.
//
// Slots are numbered from the bottom of the stack starting at 1: the value pushed when depth
// becomes n lives in slot n and stays there, while its distance from rsp grows with every
// later push. That is why offsets are computed at each reference and never stored.
type StackTracker struct {
	output instructionWriter
	depth  int
	slots  map[string]int
}

func NewStackTracker(output instructionWriter) *StackTracker {
	return &StackTracker{output: output, slots: map[string]int{}}
}

func (tracker *StackTracker) Depth() int {
	return tracker.depth
}

func (tracker *StackTracker) push(operand string) {
	tracker.output.writeInstruction(fmt.Sprintf("push %s", operand))
	tracker.depth++
}

func (tracker *StackTracker) pop(destination string) {
	tracker.output.writeInstruction(fmt.Sprintf("pop %s", destination))
	tracker.depth--
}

// declare binds name to the slot on top of the stack. Must be called right after the value
// was pushed. Let-bound slots are never popped.
func (tracker *StackTracker) declare(name string) {
	tracker.slots[name] = tracker.depth
}

// resolve returns the byte offset of name's slot from the current stack top.
func (tracker *StackTracker) resolve(name string) (int, bool) {
	slot, ok := tracker.slots[name]
	if !ok {
		return 0, false
	}
	return (tracker.depth - slot) * slotSize, true
}
