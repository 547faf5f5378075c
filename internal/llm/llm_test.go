package llm

import (
	"strings"
	"testing"
)

func TestSchemaInstruction(t *testing.T) {
	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"soundtrackNote": map[string]interface{}{"type": "string"},
		},
		"required": []interface{}{"soundtrackNote"},
	}

	text, err := SchemaInstruction(schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(text, `"soundtrackNote"`) {
		t.Errorf("instruction missing schema body: %s", text)
	}
	if !strings.Contains(text, "JSON Schema") {
		t.Errorf("instruction missing framing: %s", text)
	}
}
