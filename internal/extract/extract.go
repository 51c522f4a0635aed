// Package extract assembles a complete interface source file from a class:
// preserved using directives, an optional namespace wrapper, and an
// interface declaration listing the class's public members.
package extract

import (
	"strings"

	"csiface/internal/parser"
	"csiface/internal/synth"
	"csiface/pkg/types"
)

const indentUnit = "    "

// GenerateInterfaceCode extracts the public surface of the class in
// classText and renders the interface file the host should persist.
//
// requested may be a bare interface name or a relative path; the interface
// name is its base name without the .cs extension. When requested is empty
// the name defaults to "I" + the source file's base name. The generated
// body lists methods first, then events, in extraction order; properties
// enter interfaces only through the incremental add operation.
func GenerateInterfaceCode(classText, requested, sourceBaseName string) types.ExtractionResult {
	name, fileName := interfaceTarget(requested, sourceBaseName)

	className := parser.ClassName(classText)
	namespace := parser.Namespace(classText)
	usings := parser.Usings(classText)

	var members []string
	for _, m := range parser.PublicMethods(classText, className) {
		members = append(members, synth.MethodSignature(m))
	}
	for _, e := range parser.PublicEvents(classText) {
		members = append(members, synth.EventSignature(e))
	}

	return types.ExtractionResult{
		InterfaceName: name,
		Body:          renderFile(usings, namespace, name, members),
		Namespace:     namespace,
		FileName:      fileName,
	}
}

// interfaceTarget resolves the requested name-or-path into an interface
// name and a suggested relative file path.
func interfaceTarget(requested, sourceBaseName string) (name, fileName string) {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		name = "I" + strings.TrimSuffix(sourceBaseName, ".cs")
		return name, name + ".cs"
	}

	normalized := strings.ReplaceAll(requested, "\\", "/")
	base := normalized
	if i := strings.LastIndexByte(normalized, '/'); i >= 0 {
		base = normalized[i+1:]
	}
	name = strings.TrimSuffix(base, ".cs")

	if strings.ContainsRune(normalized, '/') {
		if !strings.HasSuffix(normalized, ".cs") {
			normalized += ".cs"
		}
		return name, normalized
	}
	return name, name + ".cs"
}

// renderFile lays out the interface source: using lines, a blank separator,
// then the declaration, wrapped in a namespace block when the class had one.
func renderFile(usings []string, namespace, name string, members []string) string {
	var b strings.Builder

	for _, u := range usings {
		b.WriteString(u)
		b.WriteString("\n")
	}
	if len(usings) > 0 {
		b.WriteString("\n")
	}

	outer := ""
	if namespace != "" {
		b.WriteString("namespace " + namespace + "\n{\n")
		outer = indentUnit
	}

	b.WriteString(outer + "public interface " + name + "\n")
	b.WriteString(outer + "{\n")
	for _, m := range members {
		b.WriteString(outer + indentUnit + m + "\n")
	}
	b.WriteString(outer + "}\n")

	if namespace != "" {
		b.WriteString("}\n")
	}
	return b.String()
}
