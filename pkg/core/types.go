package core

import "fmt"

// Type is a source-level type: either a single byte cell, or a struct laid
// out as a sequence of named, contiguously-offset fields. Grounded on
// bfpp_types.py's Type/Byte/Struct hierarchy.
type Type interface {
	// Size is the number of cells this type occupies.
	Size(reg *TypeRegistry) int
	String() string
}

// ByteType is the one-cell primitive type.
type ByteType struct{}

func (ByteType) Size(*TypeRegistry) int { return 1 }
func (ByteType) String() string         { return "byte" }

// Field is one named member of a StructType, in declaration order.
type Field struct {
	Name     string
	TypeName string
}

// StructType is a named sequence of fields. Field offsets are computed on
// demand via the registry (bfpp_types.py deliberately doesn't cache a
// struct's own size inline; it's derived through the registry so that
// forward references between struct declarations stay simple).
type StructType struct {
	Fields []Field
}

func (s StructType) Size(reg *TypeRegistry) int {
	total := 0
	for _, f := range s.Fields {
		total += reg.SizeOf(f.TypeName)
	}
	return total
}

func (s StructType) String() string {
	return fmt.Sprintf("struct(%d fields)", len(s.Fields))
}

// FieldOffset returns the offset of the named field within the struct, and
// the field's type name, or ok=false if no such field exists.
func (s StructType) FieldOffset(reg *TypeRegistry, name string) (offset int, typeName string, ok bool) {
	off := 0
	for _, f := range s.Fields {
		if f.Name == name {
			return off, f.TypeName, true
		}
		off += reg.SizeOf(f.TypeName)
	}
	return 0, "", false
}

// FieldNames returns the struct's field names in declaration order, used to
// build "did you mean" suggestions for FieldNotFound.
func (s StructType) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// TypeRegistry maps type names to their definitions. "byte" is always
// present; struct types are added via Declare.
type TypeRegistry struct {
	named map[string]Type
}

// NewTypeRegistry returns a registry with only the builtin byte type.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{named: map[string]Type{"byte": ByteType{}}}
}

// Declare registers a named type, overwriting any previous definition under
// that name (redeclaration is a caller-level diagnostic concern, not a
// registry-level error — matching tokens.py's TypeDec, which never
// refuses a redefinition).
func (r *TypeRegistry) Declare(name string, t Type) {
	r.named[name] = t
}

// Lookup returns the type registered under name, if any.
func (r *TypeRegistry) Lookup(name string) (Type, bool) {
	t, ok := r.named[name]
	return t, ok
}

// SizeOf returns the size in cells of the named type, or 0 if the name is
// unknown (callers are expected to have already validated the name exists
// via Lookup and raised TypeNotFound otherwise).
func (r *TypeRegistry) SizeOf(name string) int {
	t, ok := r.named[name]
	if !ok {
		return 0
	}
	return t.Size(r)
}

// Names returns every registered type name, used for "did you mean"
// suggestions on TypeNotFound.
func (r *TypeRegistry) Names() []string {
	names := make([]string, 0, len(r.named))
	for n := range r.named {
		names = append(names, n)
	}
	return names
}
