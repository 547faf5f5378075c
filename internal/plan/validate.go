package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// rawPlan mirrors EditPlan with pointer fields so that a missing field is
// distinguishable from a zero value. A type mismatch fails the unmarshal.
type rawPlan struct {
	Scenes         *[]rawScene `json:"scenes"`
	SoundtrackNote *string     `json:"soundtrackNote"`
}

type rawScene struct {
	ClipID           *string  `json:"clipId"`
	StartTimeSeconds *float64 `json:"startTimeSeconds"`
	DurationSeconds  *float64 `json:"durationSeconds"`
	Transition       *string  `json:"transition"`
	Description      *string  `json:"description"`
}

// ParsePlan performs the strict structural parse of a provider payload into
// an EditPlan. The remote service is untrusted: the declared schema is not a
// safe invariant, so every required field, its primitive type, and every
// clipId reference is checked here. Any failure is returned as an error for
// the caller to absorb into the fallback; it never reaches the collaborator.
func ParsePlan(payload string, clips []ClipDescriptor) (EditPlan, error) {
	known := make(map[string]struct{}, len(clips))
	for _, c := range clips {
		known[c.ID] = struct{}{}
	}

	var raw rawPlan
	if err := json.Unmarshal([]byte(stripCodeFence(payload)), &raw); err != nil {
		return EditPlan{}, fmt.Errorf("malformed payload: %w", err)
	}

	if raw.Scenes == nil {
		return EditPlan{}, fmt.Errorf("malformed payload: missing scenes")
	}
	if raw.SoundtrackNote == nil {
		return EditPlan{}, fmt.Errorf("malformed payload: missing soundtrackNote")
	}

	scenes := make([]SceneSegment, 0, len(*raw.Scenes))
	for i, s := range *raw.Scenes {
		scene, err := s.validate(i, known)
		if err != nil {
			return EditPlan{}, err
		}
		scenes = append(scenes, scene)
	}

	return EditPlan{Scenes: scenes, SoundtrackNote: *raw.SoundtrackNote}, nil
}

func (s rawScene) validate(i int, known map[string]struct{}) (SceneSegment, error) {
	switch {
	case s.ClipID == nil:
		return SceneSegment{}, fmt.Errorf("scene %d: missing clipId", i)
	case s.StartTimeSeconds == nil:
		return SceneSegment{}, fmt.Errorf("scene %d: missing startTimeSeconds", i)
	case s.DurationSeconds == nil:
		return SceneSegment{}, fmt.Errorf("scene %d: missing durationSeconds", i)
	case s.Transition == nil:
		return SceneSegment{}, fmt.Errorf("scene %d: missing transition", i)
	case s.Description == nil:
		return SceneSegment{}, fmt.Errorf("scene %d: missing description", i)
	}

	if _, ok := known[*s.ClipID]; !ok {
		return SceneSegment{}, fmt.Errorf("scene %d: unknown clipId %q", i, *s.ClipID)
	}
	if *s.StartTimeSeconds < 0 {
		return SceneSegment{}, fmt.Errorf("scene %d: negative startTimeSeconds", i)
	}
	if *s.DurationSeconds <= 0 {
		return SceneSegment{}, fmt.Errorf("scene %d: non-positive durationSeconds", i)
	}

	return SceneSegment{
		ClipID:           *s.ClipID,
		StartTimeSeconds: *s.StartTimeSeconds,
		DurationSeconds:  *s.DurationSeconds,
		Transition:       *s.Transition,
		Description:      *s.Description,
	}, nil
}

// stripCodeFence tolerates providers that wrap the JSON body in a Markdown
// code fence despite the schema instruction.
func stripCodeFence(payload string) string {
	trimmed := strings.TrimSpace(payload)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
