package stubs

import (
	"strings"

	"csiface/internal/synth"
	"csiface/pkg/types"
)

const indentUnit = "    "

// GenerateStubs renders placeholder implementations for every member of the
// set: properties first, then events, then methods, separated by blank
// lines. Method bodies throw NotImplementedException unconditionally.
func GenerateStubs(members types.InterfaceMemberSet) string {
	var blocks []string
	for _, p := range members.Properties {
		blocks = append(blocks, synth.PropertyStub(p))
	}
	for _, e := range members.Events {
		blocks = append(blocks, synth.EventStub(e))
	}
	for _, m := range members.Methods {
		blocks = append(blocks, synth.MethodStub(m))
	}
	return strings.Join(blocks, "\n\n")
}

// InsertIntoClass splices stub text immediately before the line holding the
// class body's closing brace. Stub lines are indented one unit past the
// class declaration. A separating blank line is added only when the
// preceding non-empty line is not the opening brace itself, so an empty
// class body does not gain a spurious blank line. When the class boundary
// cannot be located, or the stub text is empty, the input is returned
// unchanged.
func InsertIntoClass(classText, stubsText string) string {
	if strings.TrimSpace(stubsText) == "" {
		return classText
	}
	lines := strings.Split(classText, "\n")
	closing := findInsertionLine(lines)
	if closing < 0 {
		return classText
	}

	classIndent := leadingWhitespace(lines[closing])
	memberIndent := classIndent + indentUnit

	var block []string
	if wantsBlankBefore(lines, closing) {
		block = append(block, "")
	}
	for _, l := range strings.Split(stubsText, "\n") {
		if l == "" {
			block = append(block, "")
		} else {
			block = append(block, memberIndent+l)
		}
	}

	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:closing]...)
	out = append(out, block...)
	out = append(out, lines[closing:]...)
	return strings.Join(out, "\n")
}

// wantsBlankBefore reports whether a blank separator line should precede
// the inserted block: yes unless the nearest non-empty line above the
// closing brace is the opening brace of the class body.
func wantsBlankBefore(lines []string, closing int) bool {
	for i := closing - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		return trimmed != "{" && !strings.HasSuffix(trimmed, "{")
	}
	return false
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
