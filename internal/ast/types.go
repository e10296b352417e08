package ast

import (
	"strconv"
	"strings"
)

// PrimitiveKind enumerates the fixed builtin scalar types.
type PrimitiveKind uint8

const (
	PrimInt8 PrimitiveKind = iota
	PrimInt16
	PrimInt32
	PrimInt64
	PrimUint8
	PrimUint16
	PrimUint32
	PrimUint64
	PrimFloat32
	PrimFloat64
	PrimString
	PrimChar
	PrimBool
)

var primitiveNames = [...]string{
	PrimInt8:    "int8",
	PrimInt16:   "int16",
	PrimInt32:   "int32",
	PrimInt64:   "int64",
	PrimUint8:   "uint8",
	PrimUint16:  "uint16",
	PrimUint32:  "uint32",
	PrimUint64:  "uint64",
	PrimFloat32: "float32",
	PrimFloat64: "float64",
	PrimString:  "string",
	PrimChar:    "char",
	PrimBool:    "bool",
}

var primitiveByName = func() map[string]PrimitiveKind {
	m := make(map[string]PrimitiveKind, len(primitiveNames))
	for k, name := range primitiveNames {
		m[name] = PrimitiveKind(k) //nolint:gosec // bounded by the array length
	}
	return m
}()

func (k PrimitiveKind) String() string {
	if int(k) < len(primitiveNames) {
		return primitiveNames[k]
	}
	return "prim(?)"
}

// LookupPrimitive maps a type name to a primitive kind.
func LookupPrimitive(name string) (PrimitiveKind, bool) {
	k, ok := primitiveByName[name]
	return k, ok
}

// Builtin generic constructors and the number of type arguments they take.
var BuiltinGenerics = map[string]int{
	"arr": 1,
	"map": 2,
	"set": 1,
	"opt": 1,
	"res": 2,
}

// Unsized marks a `[]` dimension of a StaticArrayType.
const Unsized = -1

type PrimitiveType struct {
	Base
	Kind PrimitiveKind
}

// UserType is a plain named type.
type UserType struct {
	Base
	Name string
}

// GenericType is a user type applied to type arguments: Name!<T, ...>.
type GenericType struct {
	UserType
	Args []Type
}

// DynamicArrayType: arr!<T>
type DynamicArrayType struct {
	Base
	Elem Type
}

// StaticArrayType is a base type followed by dimension suffixes, e.g. int32[3][].
// Dims keeps declaration order; Unsized stands for `[]`.
type StaticArrayType struct {
	Base
	Elem Type
	Dims []int
}

// MapType: map!<K, V>
type MapType struct {
	Base
	Key, Value Type
}

// SetType: set!<T>
type SetType struct {
	Base
	Elem Type
}

// OptionalType: opt!<T>
type OptionalType struct {
	Base
	Inner Type
}

// ResultType: res!<T, E>
type ResultType struct {
	Base
	Ok, Err Type
}

func (t *PrimitiveType) String() string { return t.Kind.String() }
func (t *UserType) String() string      { return t.Name }

func (t *GenericType) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteString("!<")
	for i, a := range t.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteString(">")
	return sb.String()
}

func (t *DynamicArrayType) String() string { return "arr!<" + t.Elem.String() + ">" }

func (t *StaticArrayType) String() string {
	var sb strings.Builder
	sb.WriteString(t.Elem.String())
	for _, d := range t.Dims {
		sb.WriteByte('[')
		if d != Unsized {
			sb.WriteString(strconv.Itoa(d))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

func (t *MapType) String() string {
	return "map!<" + t.Key.String() + ", " + t.Value.String() + ">"
}
func (t *SetType) String() string      { return "set!<" + t.Elem.String() + ">" }
func (t *OptionalType) String() string { return "opt!<" + t.Inner.String() + ">" }
func (t *ResultType) String() string {
	return "res!<" + t.Ok.String() + ", " + t.Err.String() + ">"
}

func (*PrimitiveType) aType()    {}
func (*UserType) aType()         {}
func (*DynamicArrayType) aType() {}
func (*StaticArrayType) aType()  {}
func (*MapType) aType()          {}
func (*SetType) aType()          {}
func (*OptionalType) aType()     {}
func (*ResultType) aType()       {}
