package parser

import "strings"

// MatchBrace returns the index of the brace closing the one at open. In
// strict mode an unbalanced region reports ok=false; in lax mode it falls
// back to the last closing brace in the text, which is how the interface
// editor tolerates partial snippets.
func MatchBrace(text string, open int, strict bool) (int, bool) {
	if open < 0 || open >= len(text) || text[open] != '{' {
		return -1, false
	}
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	if strict {
		return -1, false
	}
	if last := strings.LastIndex(text, "}"); last > open {
		return last, true
	}
	return -1, false
}

// InterfaceBody locates the member-list region of the first interface
// declared in text. open is the index of the opening brace, close the index
// of its matching closing brace. ok=false when no interface declaration is
// found or, in strict mode, when the braces never balance.
func InterfaceBody(text string, strict bool) (open, close int, ok bool) {
	loc := ifacePattern.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	open = loc[1] - 1
	close, ok = MatchBrace(text, open, strict)
	return open, close, ok
}

// InterfaceName returns the name of the first interface declared in text,
// or "" when there is none.
func InterfaceName(text string) string {
	m := ifacePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
