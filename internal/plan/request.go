package plan

import (
	"fmt"
	"strings"
)

// Request is the three-part payload handed to a generative provider: a
// persona instruction, a task instruction with the concrete parameters, and
// the output schema the provider must conform to.
type Request struct {
	System string
	User   string
	Schema map[string]interface{}
}

// BuildRequest assembles the generation request from the project
// configuration and the clip set. Pure function: no I/O, no randomness.
func BuildRequest(project ProjectConfiguration, clips []ClipDescriptor) (Request, error) {
	if err := ValidateClips(clips); err != nil {
		return Request{}, err
	}

	return Request{
		System: systemInstruction,
		User:   taskInstruction(project, clips),
		Schema: PlanSchema(),
	}, nil
}

const systemInstruction = `You are an expert short-form music video editor. ` +
	`Given a project brief and a set of source clips, you produce a tight edit plan: ` +
	`an ordered list of scene cuts with transitions, plus one soundtrack recommendation. ` +
	`You respond with structured data only, never prose.`

func taskInstruction(project ProjectConfiguration, clips []ClipDescriptor) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %q\n", project.Title)
	fmt.Fprintf(&b, "Output: %s, %s, target duration %d seconds\n",
		project.Resolution, project.AspectRatio, project.TargetDurationSeconds)
	fmt.Fprintf(&b, "Musical focus: %s\n", project.MusicalFocus)
	if project.Watermark != "" {
		b.WriteString("Watermark: present\n")
	} else {
		b.WriteString("Watermark: none\n")
	}

	b.WriteString("\nSource clips, in import order:\n")
	for i, c := range clips {
		fmt.Fprintf(&b, "%d. id=%s name=%q duration=%.1fs energy=%s\n",
			i+1, c.ID, c.Name, c.DurationSeconds, c.EnergyLevel)
	}

	b.WriteString("\nCutting guidance:\n")
	b.WriteString("- Use abrupt transitions (hard cuts, jump cuts) for high-energy segments.\n")
	fmt.Fprintf(&b, "- Use smoother transitions (cross-dissolves) for low-energy segments and for the %s focus where it suits.\n",
		project.MusicalFocus)
	fmt.Fprintf(&b, "- Scene durations should sum to approximately %d seconds.\n",
		project.TargetDurationSeconds)
	if project.Watermark != "" {
		b.WriteString("- Emphasize the watermark branding near the end of the sequence.\n")
	}
	b.WriteString("- Every scene must reference one of the clip ids above.\n")

	return b.String()
}

// PlanSchema returns the JSON Schema the provider's output must conform to.
// Gemini consumes it natively; the other providers receive it inlined as an
// instruction.
func PlanSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"scenes": map[string]interface{}{
				"type":        "array",
				"description": "Ordered scene cuts, playback order of the final edit",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"clipId": map[string]interface{}{
							"type":        "string",
							"description": "id of the source clip this scene is cut from",
						},
						"startTimeSeconds": map[string]interface{}{
							"type":        "number",
							"description": "offset within the source clip, >= 0",
						},
						"durationSeconds": map[string]interface{}{
							"type":        "number",
							"description": "length of this scene in the output, > 0",
						},
						"transition": map[string]interface{}{
							"type":        "string",
							"description": "transition style into this scene, e.g. hard-cut, jump-cut, cross-dissolve",
						},
						"description": map[string]interface{}{
							"type":        "string",
							"description": "human-readable rationale for the cut",
						},
					},
					"required": []interface{}{
						"clipId", "startTimeSeconds", "durationSeconds", "transition", "description",
					},
				},
			},
			"soundtrackNote": map[string]interface{}{
				"type":        "string",
				"description": "audio enhancement recommendation for the final mix",
			},
		},
		"required": []interface{}{"scenes", "soundtrackNote"},
	}
}
