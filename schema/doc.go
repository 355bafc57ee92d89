// Package schema converts type descriptors into function-calling schema
// documents.
//
// The package is the core of the generator: it classifies each descriptor
// into a schema category, recursively composes nodes for containers and
// nested objects, merges metadata overrides over defaults, and wraps the root
// schema in the function envelope.
//
// # Building
//
// Build produces a node for any descriptor; BuildRoot wraps a root type:
//
//	td, _ := introspect.New().Describe(reflect.TypeOf(WeatherQuery{}))
//	env := schema.BuildRoot(td)
//
// # Classification
//
// Descriptors are handled in a fixed precedence:
//
//   - Temporal: opaque {type: "datetime"} nodes, never decomposed
//   - Array/Collection: {type: "array"} with recursive items
//   - Primitive: one of string, integer, number, boolean via a fixed table
//   - Enum: {type: "string"} with constant names in declaration order
//   - Map: opaque {type: "object"} with no properties
//   - Object: recursive properties plus an aggregated required list
//
// # Metadata
//
// ResolveType and ResolveField merge raw overrides over defaults. Field
// descriptions and formats attach onto the built node when non-empty; the
// type-level override drives the envelope's name, description and strict
// flag, and its presence alone decides whether additionalProperties is
// emitted on the parameters node.
//
// # Emission
//
// Node marshaling keeps the document's insertion-order key layout, so a
// fixed serializer reproduces the same bytes for the same input every time.
package schema
