package introspect

import (
	"strings"

	"github.com/freakynit/openai-function-schema-generator/descriptor"
)

// parseTag parses a `schema` struct tag into a field metadata override.
// Supported directives, comma separated:
//
//	name=customName
//	description=Some description
//	required
//	format=date-time
//
// Returns nil for an empty tag, meaning no override was declared.
func parseTag(tag string) *descriptor.Metadata {
	if tag == "" {
		return nil
	}

	md := &descriptor.Metadata{}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)

		switch {
		case part == "required":
			md.Required = true
		case strings.HasPrefix(part, "name="):
			md.Name = strings.TrimPrefix(part, "name=")
		case strings.HasPrefix(part, "description="):
			md.Description = strings.TrimPrefix(part, "description=")
		case strings.HasPrefix(part, "format="):
			md.Format = strings.TrimPrefix(part, "format=")
		}
	}
	return md
}
