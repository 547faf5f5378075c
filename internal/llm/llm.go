// Package llm holds helpers shared by the generative provider
// implementations. The providers themselves live in subpackages; each exports
// a NewProvider function that cmd/server wires directly, keeping the plan
// package free of provider imports.
package llm

import (
	"encoding/json"
	"fmt"
)

// SchemaInstruction renders the output schema as an instruction block for
// providers without native structured-output support (Claude, the OpenAI
// chat endpoints). Gemini receives the schema natively instead.
func SchemaInstruction(schema map[string]interface{}) (string, error) {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}

	return fmt.Sprintf("Respond with a single JSON object conforming to this JSON Schema, with no surrounding prose or code fences:\n%s", data), nil
}
