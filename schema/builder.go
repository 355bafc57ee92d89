package schema

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/freakynit/openai-function-schema-generator/descriptor"
)

// Build produces the schema node for a type descriptor.
//
// Categories are handled in a fixed precedence: temporal, array, collection,
// primitive, enum, map, with everything else falling through to the object
// case. Build is total over well-formed descriptors and never fails.
func Build(td *descriptor.Type) *Node {
	switch td.Kind {
	case descriptor.KindTemporal:
		// Temporal types are opaque; their internal fields are
		// implementation artifacts, not schema data.
		return &Node{Type: typeDatetime}
	case descriptor.KindArray, descriptor.KindCollection:
		return &Node{Type: typeArray, Items: buildItems(td.Elem)}
	case descriptor.KindPrimitive:
		return &Node{Type: primitiveType(td.Primitive)}
	case descriptor.KindEnum:
		return &Node{
			Type: typeString,
			Enum: append([]string(nil), td.EnumValues...),
		}
	case descriptor.KindMap:
		// Maps have no fixed property set and stay schema-opaque.
		return &Node{Type: typeObject}
	default:
		return buildObject(td)
	}
}

// BuildRoot resolves the type-level metadata for td and wraps its object
// schema in the function-calling envelope. The root is always built through
// the object path regardless of its classification.
func BuildRoot(td *descriptor.Type) *Envelope {
	md := ResolveType(td.Name, td.Metadata)

	params := buildObject(td)
	if md.Overridden {
		v := md.AdditionalProperties
		params.AdditionalProperties = &v
	}

	return &Envelope{
		Type: typeFunction,
		Function: Function{
			Name:        md.Name,
			Description: md.Description,
			Strict:      md.Strict,
			Parameters:  params,
		},
	}
}

// buildItems resolves a container's element schema. A nil element descriptor
// means no element type information was available; the element degrades to an
// open object.
func buildItems(elem *descriptor.Type) *Node {
	if elem == nil {
		return &Node{Type: typeObject}
	}
	return Build(elem)
}

// buildObject processes each declared field: resolve its metadata, build its
// schema node recursively, attach description and format when non-empty, and
// aggregate the properties map and required list. On a resolved-name
// collision the last field in declaration order wins the property slot.
func buildObject(td *descriptor.Type) *Node {
	node := &Node{
		Type:       typeObject,
		Properties: orderedmap.New[string, *Node](),
	}

	for _, field := range td.Fields {
		md := ResolveField(field.Name, field.Metadata)

		fieldNode := Build(field.Type)
		if md.Description != "" {
			fieldNode.Description = md.Description
		}
		if md.Format != "" {
			fieldNode.Format = md.Format
		}

		node.Properties.Set(md.Name, fieldNode)
		if md.Required {
			node.Required = append(node.Required, md.Name)
		}
	}

	return node
}

// primitiveType maps a primitive class to its JSON type name. The mapping is
// a fixed table; every primitive resolves to exactly one JSON type.
func primitiveType(p descriptor.Primitive) string {
	switch p {
	case descriptor.PrimitiveInteger:
		return typeInteger
	case descriptor.PrimitiveNumber:
		return typeNumber
	case descriptor.PrimitiveBoolean:
		return typeBoolean
	default:
		return typeString
	}
}
