// Package editor splices synthesized member text into existing C# source:
// new signatures into interface bodies, and interface names into class
// declaration headers. Both operations take old text and return new text;
// everything outside the located region is preserved byte-for-byte.
package editor

import (
	"regexp"
	"strings"

	"csiface/internal/parser"
	"csiface/internal/synth"
	"csiface/pkg/types"
)

// defaultIndent is used when an interface body is empty and carries no
// ambient indentation to copy.
const defaultIndent = "    "

// InsertMember splices a rendered member signature into the first interface
// declared in interfaceText, before its closing brace, copying the ambient
// indentation of the existing member list.
//
// Duplicate detection is by bare member name only, anywhere in the text:
// inserting the same member twice is a no-op (idempotence), but an overload
// differing only in parameter types is indistinguishable from a duplicate
// and is silently dropped. When no interface declaration is found the input
// is returned unchanged.
func InsertMember(interfaceText, signature string) string {
	name := memberName(signature)
	if name == "" {
		return interfaceText
	}
	if wordPattern(name).MatchString(interfaceText) {
		return interfaceText
	}

	open, close, ok := parser.InterfaceBody(interfaceText, false)
	if !ok {
		return interfaceText
	}

	inner := interfaceText[open+1 : close]
	indent := bodyIndent(inner)
	closeIndent := lineIndent(interfaceText, close)

	body := strings.TrimRight(inner, " \t\r\n")
	if strings.TrimSpace(body) == "" {
		body = "\n" + indent + signature + "\n"
	} else {
		body = body + "\n" + indent + signature + "\n"
	}

	return interfaceText[:open+1] + body + closeIndent + interfaceText[close:]
}

// AddMethod renders the descriptor in interface form and inserts it.
func AddMethod(interfaceText string, m types.MethodDescriptor) string {
	return InsertMember(interfaceText, synth.MethodSignature(m))
}

// AddProperty renders the descriptor in interface form and inserts it.
func AddProperty(interfaceText string, p types.PropertyDescriptor) string {
	return InsertMember(interfaceText, synth.PropertySignature(p))
}

// memberName derives the bare member name from a rendered signature: the
// identifier preceding the first "(" or "<", or the last identifier before
// the terminator for parameterless forms like properties and events.
func memberName(signature string) string {
	cut := len(signature)
	if i := strings.IndexAny(signature, "(<"); i >= 0 {
		cut = i
	}
	head := strings.TrimRight(signature[:cut], " \t")
	if i := strings.IndexAny(head, "{;"); i >= 0 {
		head = strings.TrimRight(head[:i], " \t")
	}
	fields := strings.Fields(head)
	if len(fields) == 0 {
		return ""
	}
	name := fields[len(fields)-1]
	if !identPattern.MatchString(name) {
		return ""
	}
	return name
}

var identPattern = regexp.MustCompile(`^[A-Za-z_]\w*$`)

func wordPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
}

// bodyIndent returns the indentation of the first indented non-blank line
// of the member list, or the default indent unit for an empty list.
func bodyIndent(inner string) string {
	for _, line := range strings.Split(inner, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ws := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if ws != "" {
			return ws
		}
	}
	return defaultIndent
}

// lineIndent returns the whitespace run at the start of the line containing
// text[pos].
func lineIndent(text string, pos int) string {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	line := text[start:pos]
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
