// Package types models Lumen's compile-time type system: builtin scalar
// types and user-defined struct (record) types, plus the nominal equality
// rule the semantic analyzer uses everywhere it compares two types.
//
// The shape — a closed interface with a handful of concrete implementations
// behind it — is carried over from the teacher interpreter's
// objects.GoMixObject (a tag-plus-interface idiom for a closed set of
// variants), repurposed from runtime values to compile-time types: there is
// no Integer/Float/String *value* type here, only the type descriptors
// those values would have.
package types

import "strings"

// Type is implemented by every Lumen type descriptor.
type Type interface {
	// String renders the type for diagnostics, e.g. "const unsigned int"
	// or "struct Point".
	String() string
	// Equals reports whether two Type values denote the same type, using
	// the nominal/structural-attribute rule spec.md §3 defines.
	Equals(other Type) bool
}

// Builtin is a primitive scalar type: one of the fixed set of names listed
// in spec.md §3, with const/unsigned modifiers. Two Builtins are equal iff
// all three fields match.
type Builtin struct {
	Name       string
	IsConst    bool
	IsUnsigned bool
}

// BuiltinNames is the closed set of valid builtin type spellings.
var BuiltinNames = map[string]bool{
	"int": true, "double": true, "float": true, "char": true,
	"bool": true, "void": true, "short": true, "long": true, "string": true,
}

func (b *Builtin) String() string {
	var sb strings.Builder
	if b.IsConst {
		sb.WriteString("const ")
	}
	if b.IsUnsigned {
		sb.WriteString("unsigned ")
	}
	sb.WriteString(b.Name)
	return sb.String()
}

func (b *Builtin) Equals(other Type) bool {
	o, ok := other.(*Builtin)
	return ok && o.Name == b.Name && o.IsConst == b.IsConst && o.IsUnsigned == b.IsUnsigned
}

// IsNumeric reports whether this builtin participates in arithmetic:
// int/double/float/short/long.
func (b *Builtin) IsNumeric() bool {
	switch b.Name {
	case "int", "double", "float", "short", "long":
		return true
	default:
		return false
	}
}

// IsVoid reports whether this is the "void" builtin.
func (b *Builtin) IsVoid() bool { return b.Name == "void" }

// IsIntOrBool reports whether this builtin may appear as a loop/if
// condition's type, per spec.md §4.3's condition-typing rule.
func (b *Builtin) IsIntOrBool() bool { return b.Name == "int" || b.Name == "bool" }

// Field is one member of a Struct, in declaration order.
type Field struct {
	Name string
	Type Type
}

// Struct is a user-defined record type. Equality is nominal: two Structs
// are equal iff their names match, regardless of field contents — this
// matches spec.md §3 exactly and is what lets a struct type be passed
// around and compared cheaply once declared.
type Struct struct {
	Name   string
	Fields []Field
}

func (s *Struct) String() string { return "struct " + s.Name }

func (s *Struct) Equals(other Type) bool {
	o, ok := other.(*Struct)
	return ok && o.Name == s.Name
}

// FieldType returns the declared type of a member, if any.
func (s *Struct) FieldType(name string) (Type, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// Signature is a function's static type: its ordered parameter types and
// its return type. Modeled after the teacher interpreter's
// function.Function (name + parameters), narrowed to the static signature —
// no body or captured scope, since code generation/execution is out of
// scope for this front end.
type Signature struct {
	Name       string
	ParamTypes []Type
	ReturnType Type
}
