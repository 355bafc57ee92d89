// Package introspect produces type descriptors from Go types using
// reflection. It is the default introspection collaborator for the schema
// builder; alternative introspectors only need to implement Introspector.
package introspect

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/freakynit/openai-function-schema-generator/descriptor"
)

// ErrUnavailable is returned when a type cannot be introspected.
// Use errors.Is to test for it.
var ErrUnavailable = errors.New("introspection unavailable")

// CycleError reports a self-referential type graph. Cyclic types cannot be
// expressed as a finite schema document, so Describe fails loudly instead of
// recursing without bound.
type CycleError struct {
	Type string // name of the type that closed the cycle
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("type graph cycle through %s", e.Type)
}

// Unwrap makes CycleError match ErrUnavailable under errors.Is.
func (e *CycleError) Unwrap() error { return ErrUnavailable }

// Enum is implemented by types that enumerate a fixed set of named values.
// EnumValues must return the value names in declaration order.
type Enum interface {
	EnumValues() []string
}

// Annotated is implemented by types that carry a type-level metadata
// override. Implementing it counts as declaring an override, which among
// other things activates additionalProperties emission on the generated
// parameters node.
type Annotated interface {
	SchemaInfo() descriptor.Metadata
}

// Introspector describes Go types as type descriptors.
type Introspector interface {
	Describe(t reflect.Type) (*descriptor.Type, error)
}

var (
	enumType      = reflect.TypeOf((*Enum)(nil)).Elem()
	annotatedType = reflect.TypeOf((*Annotated)(nil)).Elem()
	bigIntType    = reflect.TypeOf(big.Int{})
	bigFloatType  = reflect.TypeOf(big.Float{})
	bigRatType    = reflect.TypeOf(big.Rat{})
)

// Reflect is the reflection-backed Introspector.
//
// Classification overlaps are resolved in a fixed order: the temporal set is
// consulted first so that time types are never decomposed into their internal
// fields, and the Enum interface is checked before the primitive table since
// Go enums are named primitive types.
type Reflect struct {
	temporal map[reflect.Type]bool
}

// New returns an introspector recognizing time.Time as the only temporal
// type. Additional temporal representations can be added with
// RegisterTemporal.
func New() *Reflect {
	return &Reflect{
		temporal: map[reflect.Type]bool{
			reflect.TypeOf(time.Time{}): true,
		},
	}
}

// RegisterTemporal adds a type to the recognized temporal set. Registered
// types are emitted as opaque datetime nodes instead of being decomposed.
func (r *Reflect) RegisterTemporal(t reflect.Type) {
	r.temporal[t] = true
}

// Describe builds the descriptor tree for t. It returns an error wrapping
// ErrUnavailable when t is nil or its type graph is cyclic.
func (r *Reflect) Describe(t reflect.Type) (*descriptor.Type, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrUnavailable)
	}
	return r.describe(t, nil)
}

func (r *Reflect) describe(t reflect.Type, path []reflect.Type) (*descriptor.Type, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if r.temporal[t] {
		return &descriptor.Type{Kind: descriptor.KindTemporal, Name: t.Name()}, nil
	}

	if values, ok := enumValues(t); ok {
		return &descriptor.Type{
			Kind:       descriptor.KindEnum,
			Name:       t.Name(),
			EnumValues: values,
		}, nil
	}

	switch t {
	case bigIntType:
		return &descriptor.Type{Kind: descriptor.KindPrimitive, Name: t.Name(), Primitive: descriptor.PrimitiveInteger}, nil
	case bigFloatType, bigRatType:
		return &descriptor.Type{Kind: descriptor.KindPrimitive, Name: t.Name(), Primitive: descriptor.PrimitiveNumber}, nil
	}

	switch t.Kind() {
	case reflect.Array:
		elem, err := r.describeElem(t.Elem(), path)
		if err != nil {
			return nil, err
		}
		return &descriptor.Type{Kind: descriptor.KindArray, Name: t.Name(), Elem: elem}, nil
	case reflect.Slice:
		elem, err := r.describeElem(t.Elem(), path)
		if err != nil {
			return nil, err
		}
		return &descriptor.Type{Kind: descriptor.KindCollection, Name: t.Name(), Elem: elem}, nil
	case reflect.String:
		return &descriptor.Type{Kind: descriptor.KindPrimitive, Name: t.Name(), Primitive: descriptor.PrimitiveString}, nil
	case reflect.Bool:
		return &descriptor.Type{Kind: descriptor.KindPrimitive, Name: t.Name(), Primitive: descriptor.PrimitiveBoolean}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &descriptor.Type{Kind: descriptor.KindPrimitive, Name: t.Name(), Primitive: descriptor.PrimitiveInteger}, nil
	case reflect.Float32, reflect.Float64:
		return &descriptor.Type{Kind: descriptor.KindPrimitive, Name: t.Name(), Primitive: descriptor.PrimitiveNumber}, nil
	case reflect.Map:
		return &descriptor.Type{Kind: descriptor.KindMap, Name: t.Name()}, nil
	case reflect.Struct:
		return r.describeStruct(t, path)
	default:
		// Interfaces and anything else fall through to an open object.
		return &descriptor.Type{Kind: descriptor.KindObject, Name: t.Name()}, nil
	}
}

// describeElem resolves a container's element type. Interface elements carry
// no usable type information, which the descriptor records as a nil Elem.
func (r *Reflect) describeElem(elem reflect.Type, path []reflect.Type) (*descriptor.Type, error) {
	if elem.Kind() == reflect.Interface {
		return nil, nil
	}
	return r.describe(elem, path)
}

func (r *Reflect) describeStruct(t reflect.Type, path []reflect.Type) (*descriptor.Type, error) {
	for _, seen := range path {
		if seen == t {
			return nil, &CycleError{Type: t.String()}
		}
	}
	path = append(path, t)

	td := &descriptor.Type{
		Kind:     descriptor.KindObject,
		Name:     t.Name(),
		Metadata: typeMetadata(t),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("schema")
		if tag == "-" {
			continue
		}

		fieldType, err := r.describe(field.Type, path)
		if err != nil {
			return nil, err
		}
		td.Fields = append(td.Fields, descriptor.Field{
			Name:     field.Name,
			Type:     fieldType,
			Metadata: parseTag(tag),
		})
	}

	return td, nil
}

// enumValues reports whether t (or *t) implements Enum and returns its value
// names.
func enumValues(t reflect.Type) ([]string, bool) {
	if t.Kind() == reflect.Interface {
		return nil, false
	}
	if !t.Implements(enumType) && !reflect.PointerTo(t).Implements(enumType) {
		return nil, false
	}
	e := reflect.New(t).Interface().(Enum)
	return e.EnumValues(), true
}

// typeMetadata returns the type-level override for t, or nil when t does not
// declare one.
func typeMetadata(t reflect.Type) *descriptor.Metadata {
	if t.Kind() == reflect.Interface {
		return nil
	}
	if !t.Implements(annotatedType) && !reflect.PointerTo(t).Implements(annotatedType) {
		return nil
	}
	md := reflect.New(t).Interface().(Annotated).SchemaInfo()
	return &md
}
