// Package parser extracts structural facts from C# source text using
// regular expressions. It is a best-effort, informal parser: a construct
// that does not match the expected shape is omitted from results, and no
// extraction function ever returns an error. Callers must treat empty
// results as "nothing found", not as a parse failure.
//
// All pattern definitions live in patterns.go so a future tokenizer could
// replace the internals without touching the descriptor contracts.
package parser

import (
	"regexp"
	"strings"

	"csiface/pkg/types"
)

// Namespace returns the first declared namespace, or "" when the source has
// none. Downstream generation falls back to a non-namespaced form.
func Namespace(source string) string {
	m := nsPattern.FindStringSubmatch(source)
	if m == nil {
		return ""
	}
	return m[1]
}

// Usings returns every using directive in source order, each line preserved
// verbatim minus leading/trailing whitespace.
func Usings(source string) []string {
	var usings []string
	for _, m := range usingPattern.FindAllString(source, -1) {
		usings = append(usings, strings.TrimSpace(m))
	}
	return usings
}

// ClassName returns the name of the first class declared in the source, or
// "" when no class declaration is found. The primary-constructor form is
// tried first so `class Foo(string p)` does not fall through unrecognized.
func ClassName(source string) string {
	if m := classPrimaryPattern.FindStringSubmatch(source); m != nil {
		return m[1]
	}
	if m := classPattern.FindStringSubmatch(source); m != nil {
		return m[1]
	}
	return ""
}

// PublicMethods extracts public method signatures from class source.
// Constructors are excluded structurally: a match whose name equals
// className is dropped. There is no overload resolution and no distinction
// from a same-named nested type.
func PublicMethods(source, className string) []types.MethodDescriptor {
	var methods []types.MethodDescriptor
	for _, m := range methodPattern.FindAllStringSubmatch(source, -1) {
		if m[2] == className {
			continue
		}
		methods = append(methods, types.MethodDescriptor{
			ReturnType: m[1],
			Name:       m[2],
			Generic:    m[3],
			Params:     strings.TrimSpace(m[4]),
		})
	}
	return methods
}

// PublicProperties extracts public properties. Presence of a "get" token
// inside the brace group after the name is the sole discriminator between a
// property and a method.
func PublicProperties(source string) []types.PropertyDescriptor {
	var props []types.PropertyDescriptor
	for _, m := range propertyPattern.FindAllStringSubmatch(source, -1) {
		props = append(props, types.PropertyDescriptor{
			Type: m[1],
			Name: m[2],
		})
	}
	return props
}

// PublicEvents extracts public event declarations.
func PublicEvents(source string) []types.EventDescriptor {
	var events []types.EventDescriptor
	for _, m := range eventPattern.FindAllStringSubmatch(source, -1) {
		events = append(events, types.EventDescriptor{
			Type: m[1],
			Name: m[2],
		})
	}
	return events
}

// Fields extracts access-modifier-qualified field declarations. Used by the
// stub inventory, not by the primary extraction path.
func Fields(source string) []types.FieldDescriptor {
	var fields []types.FieldDescriptor
	for _, m := range fieldPattern.FindAllStringSubmatch(source, -1) {
		fields = append(fields, types.FieldDescriptor{
			Modifier: m[1],
			ReadOnly: m[2] != "",
			Type:     m[3],
			Name:     m[4],
		})
	}
	return fields
}

// InheritanceList returns the raw entries of the class's inheritance clause
// (text after the colon, up to the opening brace), split on commas and
// trimmed. The first entry may be a base class rather than an interface;
// the parser makes no such distinction.
func InheritanceList(source string) []string {
	var clause string
	if m := classPrimaryPattern.FindStringSubmatch(source); m != nil && m[3] != "" {
		clause = m[3]
	} else if m := classPattern.FindStringSubmatch(source); m != nil && m[2] != "" {
		clause = m[2]
	}
	if clause == "" {
		return nil
	}
	return splitAndTrim(clause, ",")
}

// ImplementedInterfaces returns the entries of the inheritance clause that
// look like interface names by convention: a leading uppercase "I" followed
// by another uppercase letter. This is a naming filter, not semantic
// resolution, so an unconventionally named interface is missed and an
// I-prefixed base class is misreported.
func ImplementedInterfaces(source string) []string {
	var ifaces []string
	for _, name := range InheritanceList(source) {
		if IsInterfaceName(name) {
			ifaces = append(ifaces, name)
		}
	}
	return ifaces
}

// IsInterfaceName reports whether name follows the I-prefix convention.
func IsInterfaceName(name string) bool {
	base := name
	if i := strings.IndexByte(base, '<'); i >= 0 {
		base = base[:i]
	}
	if len(base) < 2 || base[0] != 'I' {
		return false
	}
	return base[1] >= 'A' && base[1] <= 'Z'
}

// ParseMethodLine parses a single source line as a public method signature.
// The enclosing source supplies the class name for constructor exclusion.
// Returns nil when the line does not match.
func ParseMethodLine(line, enclosing string) *types.MethodDescriptor {
	m := methodPattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	if m[2] == ClassName(enclosing) {
		return nil
	}
	return &types.MethodDescriptor{
		ReturnType: m[1],
		Name:       m[2],
		Generic:    m[3],
		Params:     strings.TrimSpace(m[4]),
	}
}

// ParsePropertyLine parses a single source line as a public property.
// Returns nil when the line does not match.
func ParsePropertyLine(line string) *types.PropertyDescriptor {
	m := propertyPattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return &types.PropertyDescriptor{
		Type: m[1],
		Name: m[2],
	}
}

// InterfaceMethods extracts statement-terminated method signatures from an
// interface body.
func InterfaceMethods(body string) []types.MethodDescriptor {
	var methods []types.MethodDescriptor
	for _, m := range ifaceMethodPattern.FindAllStringSubmatch(body, -1) {
		methods = append(methods, types.MethodDescriptor{
			ReturnType: m[1],
			Name:       m[2],
			Generic:    m[3],
			Params:     strings.TrimSpace(m[4]),
		})
	}
	return methods
}

// InterfaceProperties extracts property signatures from an interface body.
func InterfaceProperties(body string) []types.PropertyDescriptor {
	var props []types.PropertyDescriptor
	for _, m := range ifacePropertyPattern.FindAllStringSubmatch(body, -1) {
		props = append(props, types.PropertyDescriptor{
			Type: m[1],
			Name: m[2],
		})
	}
	return props
}

// InterfaceEvents extracts event signatures from an interface body.
func InterfaceEvents(body string) []types.EventDescriptor {
	var events []types.EventDescriptor
	for _, m := range ifaceEventPattern.FindAllStringSubmatch(body, -1) {
		events = append(events, types.EventDescriptor{
			Type: m[1],
			Name: m[2],
		})
	}
	return events
}

// FindMemberLine returns the first line of source declaring a public member
// with the given bare name (followed by "(", "<" or "{"), or "" when none
// is found.
func FindMemberLine(source, name string) string {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*[(<{]`)
	for _, line := range strings.Split(source, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), "public ") {
			continue
		}
		if re.MatchString(line) {
			return line
		}
	}
	return ""
}

func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
