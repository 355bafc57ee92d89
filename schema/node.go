package schema

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// JSON type names emitted by the builder.
const (
	typeObject   = "object"
	typeArray    = "array"
	typeString   = "string"
	typeInteger  = "integer"
	typeNumber   = "number"
	typeBoolean  = "boolean"
	typeDatetime = "datetime"
	typeFunction = "function"
)

// Node is one node of the generated schema document tree. A Node owns its
// Items and Properties children exclusively; trees never share nodes.
type Node struct {
	Type                 string
	Enum                 []string
	Items                *Node
	Properties           *orderedmap.OrderedMap[string, *Node]
	Required             []string
	Description          string
	Format               string
	AdditionalProperties *bool // nil suppresses the key entirely
}

// MarshalJSON emits the node's keys in the document's fixed insertion order:
// type, enum, items, properties, required, description, format,
// additionalProperties. Absent attributes are omitted, never emitted empty,
// except properties which is always present on object nodes that declare it.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := orderedmap.New[string, any]()
	out.Set("type", n.Type)
	if len(n.Enum) > 0 {
		out.Set("enum", n.Enum)
	}
	if n.Items != nil {
		out.Set("items", n.Items)
	}
	if n.Properties != nil {
		out.Set("properties", n.Properties)
	}
	if len(n.Required) > 0 {
		out.Set("required", n.Required)
	}
	if n.Description != "" {
		out.Set("description", n.Description)
	}
	if n.Format != "" {
		out.Set("format", n.Format)
	}
	if n.AdditionalProperties != nil {
		out.Set("additionalProperties", *n.AdditionalProperties)
	}
	return json.Marshal(out)
}

// Envelope is the function-calling wrapper around a parameters schema.
type Envelope struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function is the function-level portion of the envelope. Strict is emitted
// unconditionally.
type Function struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Strict      bool   `json:"strict"`
	Parameters  *Node  `json:"parameters"`
}
