// Package synth renders member descriptors into C# text fragments: the
// signature form that goes into an interface body, and the stub form that
// goes into a class body. Every function is a single deterministic
// formatting rule with no parsing and no I/O.
package synth

import (
	"fmt"

	"csiface/pkg/types"
)

// MethodSignature renders a method in interface form:
// "ReturnType Name<T>(params);"
func MethodSignature(m types.MethodDescriptor) string {
	return fmt.Sprintf("%s %s%s(%s);", m.ReturnType, m.Name, m.Generic, m.Params)
}

// PropertySignature renders a property in interface form. Both accessors
// are always emitted, even when the source had only a getter; the
// descriptor does not retain setter presence.
func PropertySignature(p types.PropertyDescriptor) string {
	return fmt.Sprintf("%s %s { get; set; }", p.Type, p.Name)
}

// EventSignature renders an event in interface form.
func EventSignature(e types.EventDescriptor) string {
	return fmt.Sprintf("event %s %s;", e.Type, e.Name)
}

// MethodStub renders a class-body stub whose body unconditionally throws.
// No return value is synthesized even for value-returning or Task-returning
// signatures; the developer replaces the throw with a real body.
func MethodStub(m types.MethodDescriptor) string {
	return fmt.Sprintf("public %s %s%s(%s)\n{\n    throw new NotImplementedException();\n}", m.ReturnType, m.Name, m.Generic, m.Params)
}

// PropertyStub renders an auto-property stub with no backing storage.
func PropertyStub(p types.PropertyDescriptor) string {
	return fmt.Sprintf("public %s %s { get; set; }", p.Type, p.Name)
}

// EventStub renders a class-body event declaration.
func EventStub(e types.EventDescriptor) string {
	return fmt.Sprintf("public event %s %s;", e.Type, e.Name)
}
