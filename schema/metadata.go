package schema

import "github.com/freakynit/openai-function-schema-generator/descriptor"

// defaultDescription is the function description used when no type-level
// override provides one.
const defaultDescription = "No description provided."

// Effective is the fully resolved set of display and behavioral attributes
// for a type or field after merging an override over the defaults.
type Effective struct {
	Name                 string
	Description          string
	Required             bool
	Format               string
	Strict               bool
	AdditionalProperties bool
	Overridden           bool // an override record was present at all
}

// ResolveType merges a type-level override over the type defaults.
// The description falls back to a fixed placeholder; Format is ignored at
// the type level. Overridden activates additionalProperties emission on the
// resulting parameters node.
func ResolveType(defaultName string, md *descriptor.Metadata) Effective {
	eff := Effective{
		Name:        defaultName,
		Description: defaultDescription,
	}
	if md == nil {
		return eff
	}
	eff.Overridden = true
	if md.Name != "" {
		eff.Name = md.Name
	}
	if md.Description != "" {
		eff.Description = md.Description
	}
	eff.Required = md.Required
	eff.Strict = md.Strict
	eff.AdditionalProperties = md.AdditionalProperties
	return eff
}

// ResolveField merges a field-level override over the field defaults.
// An absent description stays empty and is omitted from the emitted node;
// Strict and AdditionalProperties are ignored at the field level.
func ResolveField(defaultName string, md *descriptor.Metadata) Effective {
	eff := Effective{Name: defaultName}
	if md == nil {
		return eff
	}
	eff.Overridden = true
	if md.Name != "" {
		eff.Name = md.Name
	}
	eff.Description = md.Description
	eff.Required = md.Required
	eff.Format = md.Format
	return eff
}
