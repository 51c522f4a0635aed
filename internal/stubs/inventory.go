// Package stubs inventories an interface's members, filters out the ones a
// class already defines, and splices placeholder implementations for the
// remainder into the class body.
package stubs

import (
	"regexp"
	"strings"

	"csiface/internal/parser"
	"csiface/pkg/types"
)

// ParseInterfaceMembers parses the member list of the first interface in
// interfaceText into structured descriptors. The body is located with
// strict balanced-brace scanning so nested brace constructs inside member
// signatures do not truncate the region. An absent or unbalanced interface
// yields an empty set.
func ParseInterfaceMembers(interfaceText string) types.InterfaceMemberSet {
	open, close, ok := parser.InterfaceBody(interfaceText, true)
	if !ok {
		return types.InterfaceMemberSet{}
	}
	body := interfaceText[open+1 : close]
	return types.InterfaceMemberSet{
		Methods:    parser.InterfaceMethods(body),
		Properties: parser.InterfaceProperties(body),
		Events:     parser.InterfaceEvents(body),
	}
}

// FilterUnimplemented returns the members of the set that classText does
// not already define. Presence is tested by bare name, not full signature:
// a method is "implemented" when its name is followed by "(" or "<", a
// property when its name is followed by "{", an event when an event
// keyword is eventually followed by the name.
func FilterUnimplemented(members types.InterfaceMemberSet, classText string) types.InterfaceMemberSet {
	var out types.InterfaceMemberSet
	for _, m := range members.Methods {
		if !methodDefined(classText, m.Name) {
			out.Methods = append(out.Methods, m)
		}
	}
	for _, p := range members.Properties {
		if !propertyDefined(classText, p.Name) {
			out.Properties = append(out.Properties, p)
		}
	}
	for _, e := range members.Events {
		if !eventDefined(classText, e.Name) {
			out.Events = append(out.Events, e)
		}
	}
	return out
}

func methodDefined(classText, name string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*[(<]`)
	return re.MatchString(classText)
}

func propertyDefined(classText, name string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*\{`)
	return re.MatchString(classText)
}

func eventDefined(classText, name string) bool {
	re := regexp.MustCompile(`\bevent\b[^;{]*\b` + regexp.QuoteMeta(name) + `\b`)
	return re.MatchString(classText)
}

// classLinePattern marks the line that opens a class declaration; the
// insertion scan starts there.
var classLinePattern = regexp.MustCompile(`\bclass\s+\w+`)

// findInsertionLine returns the index of the line containing the closing
// brace of the first class body in the given lines, or -1 when no class
// keyword is seen or the braces never balance.
func findInsertionLine(lines []string) int {
	start := -1
	for i, line := range lines {
		if classLinePattern.MatchString(line) {
			start = i
			break
		}
	}
	if start < 0 {
		return -1
	}
	depth := 0
	opened := false
	for i := start; i < len(lines); i++ {
		depth += strings.Count(lines[i], "{") - strings.Count(lines[i], "}")
		if depth > 0 {
			opened = true
		}
		if opened && depth <= 0 {
			return i
		}
	}
	return -1
}
