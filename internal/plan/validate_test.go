package plan

import (
	"strings"
	"testing"
)

const wellFormedPayload = `{
	"scenes": [
		{"clipId": "clip-0", "startTimeSeconds": 0, "durationSeconds": 12.5, "transition": "jump-cut", "description": "open on the drop"},
		{"clipId": "clip-1", "startTimeSeconds": 3, "durationSeconds": 7.5, "transition": "cross-dissolve", "description": "cool down into the outro"}
	],
	"soundtrackNote": "boost the chorus vocals"
}`

func TestParsePlan_WellFormed(t *testing.T) {
	result, err := ParsePlan(wellFormedPayload, testClips(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Scenes) != 2 {
		t.Fatalf("scenes = %d, want 2", len(result.Scenes))
	}
	if result.SoundtrackNote != "boost the chorus vocals" {
		t.Errorf("soundtrackNote = %q", result.SoundtrackNote)
	}

	first := result.Scenes[0]
	if first.ClipID != "clip-0" || first.DurationSeconds != 12.5 || first.Transition != "jump-cut" {
		t.Errorf("first scene = %+v", first)
	}
}

func TestParsePlan_CodeFence(t *testing.T) {
	fenced := "```json\n" + wellFormedPayload + "\n```"

	result, err := ParsePlan(fenced, testClips(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Scenes) != 2 {
		t.Fatalf("scenes = %d, want 2", len(result.Scenes))
	}
}

func TestParsePlan_Rejections(t *testing.T) {
	clips := testClips(2)

	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "malformed syntax",
			payload: `{"scenes": [`,
		},
		{
			name:    "missing scenes",
			payload: `{"soundtrackNote": "n"}`,
		},
		{
			name:    "missing soundtrackNote",
			payload: `{"scenes": []}`,
		},
		{
			name:    "scene missing duration",
			payload: `{"scenes": [{"clipId": "clip-0", "startTimeSeconds": 0, "transition": "hard-cut", "description": "d"}], "soundtrackNote": "n"}`,
		},
		{
			name:    "scene missing transition",
			payload: `{"scenes": [{"clipId": "clip-0", "startTimeSeconds": 0, "durationSeconds": 5, "description": "d"}], "soundtrackNote": "n"}`,
		},
		{
			name:    "duration wrong type",
			payload: `{"scenes": [{"clipId": "clip-0", "startTimeSeconds": 0, "durationSeconds": "5", "transition": "hard-cut", "description": "d"}], "soundtrackNote": "n"}`,
		},
		{
			name:    "soundtrackNote wrong type",
			payload: `{"scenes": [], "soundtrackNote": 7}`,
		},
		{
			name:    "unknown clipId",
			payload: `{"scenes": [{"clipId": "ghost", "startTimeSeconds": 0, "durationSeconds": 5, "transition": "hard-cut", "description": "d"}], "soundtrackNote": "n"}`,
		},
		{
			name:    "negative start",
			payload: `{"scenes": [{"clipId": "clip-0", "startTimeSeconds": -1, "durationSeconds": 5, "transition": "hard-cut", "description": "d"}], "soundtrackNote": "n"}`,
		},
		{
			name:    "zero duration",
			payload: `{"scenes": [{"clipId": "clip-0", "startTimeSeconds": 0, "durationSeconds": 0, "transition": "hard-cut", "description": "d"}], "soundtrackNote": "n"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePlan(tt.payload, clips); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestParsePlan_EmptyScenesIsStructurallyValid(t *testing.T) {
	// An empty scene list parses; the planner decides it is unusable.
	result, err := ParsePlan(`{"scenes": [], "soundtrackNote": "n"}`, testClips(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Scenes) != 0 {
		t.Fatalf("scenes = %d, want 0", len(result.Scenes))
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if strings.Contains(stripCodeFence("```json\n{}\n```"), "`") {
		t.Error("fence characters leaked through")
	}
}
