package gemini

import (
	"testing"

	"google.golang.org/genai"

	"github.com/riffcut/riffcut-server/internal/plan"
	"github.com/riffcut/riffcut-server/pkg/types"
)

func TestConvertSchema_PlanSchema(t *testing.T) {
	schema := convertSchema(plan.PlanSchema())

	if schema.Type != genai.TypeObject {
		t.Fatalf("top-level type = %v, want object", schema.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("required = %v, want scenes and soundtrackNote", schema.Required)
	}

	scenes, ok := schema.Properties["scenes"]
	if !ok {
		t.Fatal("scenes property missing")
	}
	if scenes.Type != genai.TypeArray {
		t.Fatalf("scenes type = %v, want array", scenes.Type)
	}
	if scenes.Items == nil {
		t.Fatal("scenes items missing")
	}
	if scenes.Items.Type != genai.TypeObject {
		t.Fatalf("scene item type = %v, want object", scenes.Items.Type)
	}
	if len(scenes.Items.Required) != 5 {
		t.Fatalf("scene required = %v, want all five fields", scenes.Items.Required)
	}

	duration, ok := scenes.Items.Properties["durationSeconds"]
	if !ok {
		t.Fatal("durationSeconds property missing")
	}
	if duration.Type != genai.TypeNumber {
		t.Fatalf("durationSeconds type = %v, want number", duration.Type)
	}

	note, ok := schema.Properties["soundtrackNote"]
	if !ok {
		t.Fatal("soundtrackNote property missing")
	}
	if note.Type != genai.TypeString {
		t.Fatalf("soundtrackNote type = %v, want string", note.Type)
	}
}

func TestConvertSchema_Empty(t *testing.T) {
	schema := convertSchema(nil)
	if schema.Type != genai.TypeObject {
		t.Fatalf("empty schema type = %v, want object", schema.Type)
	}
}

func TestMapJSONType(t *testing.T) {
	tests := []struct {
		in   string
		want genai.Type
	}{
		{"string", genai.TypeString},
		{"number", genai.TypeNumber},
		{"integer", genai.TypeInteger},
		{"boolean", genai.TypeBoolean},
		{"array", genai.TypeArray},
		{"object", genai.TypeObject},
		{"unknown", genai.TypeString},
	}

	for _, tt := range tests {
		if got := mapJSONType(tt.in); got != tt.want {
			t.Errorf("mapJSONType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProvider_DisabledWithoutKey(t *testing.T) {
	p, err := NewProvider(types.GoogleConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.IsEnabled() {
		t.Fatal("provider should be disabled without an API key")
	}
}

func TestProvider_ImplementsGenerator(t *testing.T) {
	var _ plan.Generator = (*Provider)(nil)
}
