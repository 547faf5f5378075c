package plan

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildRequest_EmptyClips(t *testing.T) {
	_, err := BuildRequest(DefaultProject(), nil)
	if err == nil {
		t.Fatal("expected error for empty clip set")
	}

	var invalid *InvalidRequestError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidRequestError, got %T", err)
	}
}

func TestBuildRequest_TooManyClips(t *testing.T) {
	_, err := BuildRequest(DefaultProject(), testClips(MaxClips+1))
	if err == nil {
		t.Fatal("expected error for oversized clip set")
	}
}

func TestBuildRequest_DuplicateClipID(t *testing.T) {
	clips := testClips(2)
	clips[1].ID = clips[0].ID

	_, err := BuildRequest(DefaultProject(), clips)
	if err == nil {
		t.Fatal("expected error for duplicate clip ids")
	}
}

func TestBuildRequest_EmbedsParameters(t *testing.T) {
	project := ProjectConfiguration{
		Title:                 "Festival Recap",
		Resolution:            Resolution4K,
		TargetDurationSeconds: 45,
		AspectRatio:           AspectHorizontal,
		MusicalFocus:          FocusDrums,
	}
	clips := testClips(3)

	req, err := BuildRequest(project, clips)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Festival Recap", "4K", "16:9", "45 seconds", "drums"} {
		if !strings.Contains(req.User, want) {
			t.Errorf("task instruction missing %q", want)
		}
	}
	for _, c := range clips {
		if !strings.Contains(req.User, c.ID) {
			t.Errorf("task instruction missing clip id %s", c.ID)
		}
	}
	if req.System == "" {
		t.Error("system instruction is empty")
	}
}

func TestBuildRequest_WatermarkGuidance(t *testing.T) {
	project := DefaultProject()
	clips := testClips(1)

	without, err := BuildRequest(project, clips)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(without.User, "Emphasize the watermark") {
		t.Error("watermark guidance present without a watermark")
	}

	project.Watermark = "logo.png"
	with, err := BuildRequest(project, clips)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(with.User, "Emphasize the watermark") {
		t.Error("watermark guidance missing")
	}
}

func TestBuildRequest_Deterministic(t *testing.T) {
	project := DefaultProject()
	clips := testClips(4)

	first, err := BuildRequest(project, clips)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildRequest(project, clips)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.System != second.System || first.User != second.User {
		t.Error("request construction is not deterministic")
	}
}

func TestPlanSchema_Shape(t *testing.T) {
	schema := PlanSchema()

	required, ok := schema["required"].([]interface{})
	if !ok || len(required) != 2 {
		t.Fatalf("top-level required = %v", schema["required"])
	}

	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("schema has no properties")
	}

	scenes, ok := props["scenes"].(map[string]interface{})
	if !ok {
		t.Fatal("schema has no scenes property")
	}
	items, ok := scenes["items"].(map[string]interface{})
	if !ok {
		t.Fatal("scenes schema has no items")
	}

	sceneRequired, ok := items["required"].([]interface{})
	if !ok || len(sceneRequired) != 5 {
		t.Fatalf("scene required = %v, want all five fields", items["required"])
	}
}
