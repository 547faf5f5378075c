package plan

import "fmt"

// FallbackSoundtrackNote is the fixed recommendation attached to every
// synthesized plan.
const FallbackSoundtrackNote = "Layer a single continuous backing track matched to the set's overall energy, with a gentle fade on the final scene."

// FallbackTransition is the transition style used for every synthesized scene
const FallbackTransition = "hard-cut"

// SynthesizeFallback produces the deterministic plan used whenever generation
// is unavailable or its output is unusable: one scene per clip in import
// order, each starting at 0 and taking an even split of the target duration.
// Scene durations sum to exactly the target (up to float rounding) and the
// same inputs always yield the same plan.
func SynthesizeFallback(project ProjectConfiguration, clips []ClipDescriptor) EditPlan {
	split := float64(project.TargetDurationSeconds) / float64(len(clips))

	scenes := make([]SceneSegment, len(clips))
	for i, c := range clips {
		scenes[i] = SceneSegment{
			ClipID:           c.ID,
			StartTimeSeconds: 0,
			DurationSeconds:  split,
			Transition:       FallbackTransition,
			Description:      fmt.Sprintf("Opening stretch of %q", c.Name),
		}
	}

	return EditPlan{
		Scenes:         scenes,
		SoundtrackNote: FallbackSoundtrackNote,
	}
}
