package editor

import (
	"regexp"
	"strings"
)

// AddInterfaceToClass rewrites the declaration header of className so it
// declares interfaceName: appended to an existing inheritance list, or
// introduced as a new colon clause. The class body is untouched.
//
// The primary-constructor form `class Foo(string p)` is recognized first;
// the plain form is the fallback. The duplicate guard is a substring match
// over the existing list, so a name that is a substring of an existing
// entry counts as already present.
//
// ok=false means neither header shape matched the given class name; the
// input is returned unchanged and the caller decides whether to surface a
// warning. This is a reported condition, never an error: partial success
// (an interface file already created) is preferable to rollback.
func AddInterfaceToClass(classText, className, interfaceName string) (string, bool) {
	name := regexp.QuoteMeta(className)
	primary := regexp.MustCompile(`class\s+` + name + `\b(?:<[^>]+>)?\s*\([^)]*\)`)
	plain := regexp.MustCompile(`class\s+` + name + `\b(?:<[^>]+>)?`)

	loc := primary.FindStringIndex(classText)
	if loc == nil {
		loc = plain.FindStringIndex(classText)
	}
	if loc == nil {
		return classText, false
	}
	headerEnd := loc[1]

	// The clause region runs from the header to the body's opening brace,
	// or to the end of the line for brace-less snippets.
	segEnd := len(classText)
	if i := strings.IndexByte(classText[headerEnd:], '{'); i >= 0 {
		segEnd = headerEnd + i
	} else if i := strings.IndexByte(classText[headerEnd:], '\n'); i >= 0 {
		segEnd = headerEnd + i
	}
	segment := classText[headerEnd:segEnd]

	if strings.Contains(segment, ":") {
		if strings.Contains(segment, interfaceName) {
			return classText, true
		}
		listEnd := headerEnd + lastNonSpace(segment) + 1
		return classText[:listEnd] + ", " + interfaceName + classText[listEnd:], true
	}

	return classText[:headerEnd] + " : " + interfaceName + classText[headerEnd:], true
}

// lastNonSpace returns the index of the last non-whitespace byte in s, or
// -1 when s is all whitespace.
func lastNonSpace(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
		default:
			return i
		}
	}
	return -1
}
