package plant

import (
	_ "embed"
)

// SchemaURL identifies the bundled schema inside the schema compiler.
const SchemaURL = "https://greenthumb.nibzard.dev/schema/plants.schema.json"

//go:embed plants.schema.json
var bundledSchema string

// BundledSchema returns the JSON Schema the plant file is validated against
// when no schema file is configured.
func BundledSchema() string {
	return bundledSchema
}
