// Package funcschema generates OpenAI function-calling compatible JSON
// schemas from Go types.
//
// The generator walks a type's fields with reflection, maps each field to a
// schema node, and wraps the result in the function envelope expected by
// function-calling APIs:
//
//	{
//	  "type": "function",
//	  "function": {
//	    "name": ...,
//	    "description": ...,
//	    "strict": false,
//	    "parameters": { "type": "object", "properties": { ... } }
//	  }
//	}
//
// Basic usage:
//
//	type WeatherQuery struct {
//	    City string `schema:"required,description=City to look up"`
//	    Unit string
//	}
//
//	doc, err := funcschema.Generate[WeatherQuery]()
//
// Field metadata is declared with the `schema` struct tag; type-level
// metadata is declared by implementing introspect.Annotated or passed as
// options (WithName, WithDescription, WithStrict, WithAdditionalProperties).
package funcschema

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/freakynit/openai-function-schema-generator/descriptor"
	"github.com/freakynit/openai-function-schema-generator/introspect"
	"github.com/freakynit/openai-function-schema-generator/schema"
)

// Re-export core types for convenience

// Metadata is a raw metadata override for a type or field.
type Metadata = descriptor.Metadata

// Node is one node of the generated schema document tree.
type Node = schema.Node

// Envelope is the outer function-calling wrapper.
type Envelope = schema.Envelope

// Introspector describes Go types as type descriptors.
type Introspector = introspect.Introspector

// ErrIntrospection matches any introspection failure under errors.Is.
var ErrIntrospection = introspect.ErrUnavailable

// Serializer renders a document tree to text. Serializers are constructed or
// passed per call; the generator keeps no process-wide serializer state.
type Serializer interface {
	Marshal(v any) ([]byte, error)
}

// JSONSerializer renders documents with encoding/json. An empty Indent
// produces compact output.
type JSONSerializer struct {
	Indent string
}

// Marshal implements Serializer.
func (s JSONSerializer) Marshal(v any) ([]byte, error) {
	if s.Indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", s.Indent)
}

// SerializationError reports a document that could not be rendered to text.
// It is returned instead of a placeholder document so callers can tell the
// failure apart from an empty schema.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize schema document: %v", e.Err)
}

// Unwrap returns the underlying serializer failure.
func (e *SerializationError) Unwrap() error { return e.Err }

// Option configures a single generation call.
type Option func(*config)

type config struct {
	introspector Introspector
	serializer   Serializer

	name, description string
	strict, addProps  *bool
	overridden        bool // any function-level option was used
}

// WithIntrospector replaces the default reflection-backed introspector.
func WithIntrospector(in Introspector) Option {
	return func(c *config) { c.introspector = in }
}

// WithSerializer replaces the default pretty-printing serializer.
func WithSerializer(s Serializer) Option {
	return func(c *config) { c.serializer = s }
}

// WithName overrides the function name. Declaring any function-level option
// counts as a type-level override.
func WithName(name string) Option {
	return func(c *config) { c.name = name; c.overridden = true }
}

// WithDescription overrides the function description.
func WithDescription(desc string) Option {
	return func(c *config) { c.description = desc; c.overridden = true }
}

// WithStrict sets the function-level strict flag.
func WithStrict(strict bool) Option {
	return func(c *config) { c.strict = &strict; c.overridden = true }
}

// WithAdditionalProperties sets the parameters-level additionalProperties
// flag. Like the other function-level options, using it activates emission of
// the additionalProperties key.
func WithAdditionalProperties(allow bool) Option {
	return func(c *config) { c.addProps = &allow; c.overridden = true }
}

// apply layers call-level options over the introspected type-level override,
// attribute by attribute. Attributes not touched by an option keep whatever
// the introspected override declared.
func (c *config) apply(td *descriptor.Type) *descriptor.Type {
	if !c.overridden {
		return td
	}

	var merged Metadata
	if td.Metadata != nil {
		merged = *td.Metadata
	}
	if c.name != "" {
		merged.Name = c.name
	}
	if c.description != "" {
		merged.Description = c.description
	}
	if c.strict != nil {
		merged.Strict = *c.strict
	}
	if c.addProps != nil {
		merged.AdditionalProperties = *c.addProps
	}

	out := *td
	out.Metadata = &merged
	return &out
}

func newConfig(opts []Option) *config {
	cfg := &config{
		introspector: introspect.New(),
		serializer:   JSONSerializer{Indent: "  "},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Generate produces the function-calling schema document for T.
func Generate[T any](opts ...Option) (string, error) {
	return GenerateType(reflect.TypeOf((*T)(nil)).Elem(), opts...)
}

// GenerateValue produces the document for the dynamic type of v.
func GenerateValue(v any, opts ...Option) (string, error) {
	return GenerateType(reflect.TypeOf(v), opts...)
}

// GenerateType produces the schema document for t.
//
// Introspection failures (including cyclic type graphs) are reported wrapping
// ErrIntrospection; serialization failures are reported as a
// *SerializationError. Generation itself is total and has no failure states.
func GenerateType(t reflect.Type, opts ...Option) (string, error) {
	cfg := newConfig(opts)

	td, err := cfg.introspector.Describe(t)
	if err != nil {
		return "", fmt.Errorf("describe type: %w", err)
	}

	doc := schema.BuildRoot(cfg.apply(td))

	out, err := cfg.serializer.Marshal(doc)
	if err != nil {
		return "", &SerializationError{Err: err}
	}
	return string(out), nil
}
