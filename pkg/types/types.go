package types

import "time"

// =============================================================================
// MEMBER DESCRIPTORS
// =============================================================================

// MethodDescriptor is a parsed public method signature.
type MethodDescriptor struct {
	ReturnType string `json:"return_type"`
	Name       string `json:"name"`
	Generic    string `json:"generic,omitempty"` // "<T>" style clause, empty if none
	Params     string `json:"params"`            // raw parameter list text, no parentheses
}

// PropertyDescriptor is a parsed public property with at least a getter.
// Whether the source had a setter is not retained; synthesis always emits both.
type PropertyDescriptor struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// EventDescriptor is a parsed public event declaration.
type EventDescriptor struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// FieldDescriptor is a parsed field declaration (used by the stub inventory,
// not by the primary extraction path).
type FieldDescriptor struct {
	Modifier string `json:"modifier"`
	ReadOnly bool   `json:"readonly"`
	Type     string `json:"type"`
	Name     string `json:"name"`
}

// InterfaceMemberSet holds an interface's members in declaration order.
type InterfaceMemberSet struct {
	Methods    []MethodDescriptor   `json:"methods,omitempty"`
	Properties []PropertyDescriptor `json:"properties,omitempty"`
	Events     []EventDescriptor    `json:"events,omitempty"`
}

// Empty reports whether the set contains no members.
func (s InterfaceMemberSet) Empty() bool {
	return len(s.Methods) == 0 && len(s.Properties) == 0 && len(s.Events) == 0
}

// Count returns the total number of members in the set.
func (s InterfaceMemberSet) Count() int {
	return len(s.Methods) + len(s.Properties) + len(s.Events)
}

// ExtractionResult is the output of interface generation, handed back to the
// host to persist. It is not retained across operations.
type ExtractionResult struct {
	InterfaceName string `json:"interface_name"`
	Body          string `json:"body"`
	Namespace     string `json:"namespace,omitempty"` // empty when the class had none
	FileName      string `json:"file_name"`           // suggested relative path for the host
}

// =============================================================================
// OPERATION HISTORY
// =============================================================================

// Operation records one applied refactoring for the history index.
type Operation struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // extract, add-method, add-property, implement
	ClassName string    `json:"class_name,omitempty"`
	Interface string    `json:"interface,omitempty"`
	File      string    `json:"file,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
