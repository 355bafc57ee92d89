// Package descriptor defines the introspected shape of types consumed by the
// schema builder. Descriptors are produced by an introspector, read once by
// the builder, and never mutated after construction.
package descriptor

// Kind classifies a type into one of the schema categories.
type Kind int

const (
	KindObject Kind = iota
	KindPrimitive
	KindTemporal
	KindArray
	KindCollection
	KindMap
	KindEnum
)

// String returns the category name, useful in error messages and logs.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindPrimitive:
		return "primitive"
	case KindTemporal:
		return "temporal"
	case KindArray:
		return "array"
	case KindCollection:
		return "collection"
	case KindMap:
		return "map"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Primitive identifies which JSON type a primitive maps to.
type Primitive int

const (
	PrimitiveString Primitive = iota
	PrimitiveInteger
	PrimitiveNumber
	PrimitiveBoolean
)

// Type describes the shape of a single type reference.
//
// Kind selects which of the remaining fields carry information: Primitive for
// KindPrimitive, Elem for KindArray and KindCollection, EnumValues for
// KindEnum, and Fields for KindObject. Metadata holds the type-level override
// and is nil when no override was declared.
type Type struct {
	Kind       Kind
	Name       string // simple type name, used for default function naming
	Primitive  Primitive
	Elem       *Type    // nil when the element type is unknown
	EnumValues []string // constant names in declaration order
	Fields     []Field  // declared fields in declaration order
	Metadata   *Metadata
}

// Field describes one declared field of an object type.
type Field struct {
	Name     string
	Type     *Type
	Metadata *Metadata // nil when no override was declared
}

// Metadata is a raw metadata override attached to a type or field at
// introspection time. All attributes are optional; zero values mean "use the
// default". Format applies to fields only; AdditionalProperties and Strict
// apply to types only.
type Metadata struct {
	Name                 string
	Description          string
	Required             bool
	Format               string
	AdditionalProperties bool
	Strict               bool
}
