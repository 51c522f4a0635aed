package parser

import "regexp"

// typeRe matches a C# type token: dotted identifier, an optional generic
// argument list (one level of nesting), optional array and nullable suffixes.
// This is an informal approximation, not a grammar: deeply nested generics
// fall out of extraction rather than failing it.
const typeRe = `[\w.]+(?:<[^<>]*(?:<[^<>]*>[^<>]*)*>)?(?:\[\])?\??`

var (
	// Namespace declaration: first dotted identifier after the keyword.
	nsPattern = regexp.MustCompile(`(?m)^\s*namespace\s+([\w.]+)`)

	// Using directive, whole line preserved verbatim.
	usingPattern = regexp.MustCompile(`(?m)^\s*using\s+[^;]+;`)

	// Class declaration, plain form. Group 1 is the name, group 2 the
	// inheritance list (absent when there is no colon clause).
	classPattern = regexp.MustCompile(`(?m)class\s+(\w+)(?:<[^>]+>)?\s*(?::\s*([^{]+?))?\s*\{`)

	// Class declaration, primary-constructor form: parameters inline in
	// the header. Tried before the plain form by the header rewriter.
	classPrimaryPattern = regexp.MustCompile(`(?m)class\s+(\w+)(?:<[^>]+>)?\s*\(([^)]*)\)\s*(?::\s*([^{\r\n]+?))?\s*(?:\{|$)`)

	// Public method in class context: signature followed by an opening
	// brace (possibly on the next line). Groups: return type, name,
	// generic clause, parameter list.
	methodPattern = regexp.MustCompile(`(?m)^\s*public\s+(?:static\s+)?(?:virtual\s+)?(?:override\s+)?(?:sealed\s+)?(?:async\s+)?(` + typeRe + `)\s+(\w+)\s*(<[^>()]+>)?\s*\(([^)]*)\)\s*(?:\{|=>|$)`)

	// Method in interface context: same shape terminated by a semicolon.
	// No access modifier; interface members are implicitly public.
	ifaceMethodPattern = regexp.MustCompile(`(?m)^\s*(` + typeRe + `)\s+(\w+)\s*(<[^>()]+>)?\s*\(([^)]*)\)\s*;`)

	// Public property: the "get" token immediately inside the brace group
	// is the sole discriminator against methods. A pathological single
	// line mixing an arrow body with accessor-like text can misfire; that
	// is a known limitation of the heuristic.
	propertyPattern = regexp.MustCompile(`(?m)^\s*public\s+(?:static\s+)?(` + typeRe + `)\s+(\w+)\s*\{\s*get`)

	// Property in interface context.
	ifacePropertyPattern = regexp.MustCompile(`(?m)^\s*(` + typeRe + `)\s+(\w+)\s*\{\s*get[^}]*\}`)

	// Public event declaration.
	eventPattern = regexp.MustCompile(`(?m)^\s*public\s+event\s+(` + typeRe + `)\s+(\w+)\s*;`)

	// Event in interface context.
	ifaceEventPattern = regexp.MustCompile(`(?m)^\s*event\s+(` + typeRe + `)\s+(\w+)\s*;`)

	// Field declaration with optional readonly qualifier.
	fieldPattern = regexp.MustCompile(`(?m)^\s*(public|private|protected|internal)\s+(readonly\s+)?(` + typeRe + `)\s+(\w+)\s*[;=]`)

	// Interface declaration header, used to locate member-list regions.
	ifacePattern = regexp.MustCompile(`(?m)interface\s+(\w+)(?:<[^>]+>)?\s*(?::\s*[^{]+?)?\s*\{`)
)
