// Package plan holds the edit-plan data model and the orchestration that
// turns a project configuration plus a set of source clips into an EditPlan,
// either via a generative provider or via the deterministic fallback.
package plan

// Resolution of the rendered output
type Resolution string

const (
	Resolution2K Resolution = "2K"
	Resolution4K Resolution = "4K"
)

// Valid reports whether the resolution is one of the supported values
func (r Resolution) Valid() bool {
	return r == Resolution2K || r == Resolution4K
}

// AspectRatio of the rendered output
type AspectRatio string

const (
	AspectVertical   AspectRatio = "9:16"
	AspectHorizontal AspectRatio = "16:9"
	AspectSquare     AspectRatio = "1:1"
)

// Valid reports whether the aspect ratio is one of the supported values
func (a AspectRatio) Valid() bool {
	return a == AspectVertical || a == AspectHorizontal || a == AspectSquare
}

// MusicalFocus biases which musical element the cut should highlight
type MusicalFocus string

const (
	FocusVocals      MusicalFocus = "vocals"
	FocusGuitarSolos MusicalFocus = "guitar-solos"
	FocusDrums       MusicalFocus = "drums"
	FocusCrowdEnergy MusicalFocus = "crowd-energy"
)

// Valid reports whether the musical focus is one of the supported values
func (m MusicalFocus) Valid() bool {
	switch m {
	case FocusVocals, FocusGuitarSolos, FocusDrums, FocusCrowdEnergy:
		return true
	}
	return false
}

// EnergyLevel is a coarse classification of a clip's intensity, used to bias
// transition style selection
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// Valid reports whether the energy level is one of the supported values
func (e EnergyLevel) Valid() bool {
	return e == EnergyLow || e == EnergyMedium || e == EnergyHigh
}

// ProjectConfiguration describes the desired output of the edit
type ProjectConfiguration struct {
	Title                 string       `json:"title"`
	Resolution            Resolution   `json:"resolution"`
	TargetDurationSeconds int          `json:"targetDurationSeconds"`
	AspectRatio           AspectRatio  `json:"aspectRatio"`
	MusicalFocus          MusicalFocus `json:"musicalFocus"`
	Watermark             string       `json:"watermark,omitempty"` // opaque image reference, presence only
}

// DefaultProject returns the configuration a fresh session starts with
func DefaultProject() ProjectConfiguration {
	return ProjectConfiguration{
		Title:                 "Untitled Mix",
		Resolution:            Resolution2K,
		TargetDurationSeconds: 60,
		AspectRatio:           AspectVertical,
		MusicalFocus:          FocusVocals,
	}
}

// ClipDescriptor is one imported source clip with its inferred attributes
type ClipDescriptor struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	DurationSeconds float64     `json:"durationSeconds"`
	EnergyLevel     EnergyLevel `json:"energyLevel"`
}

// SceneSegment is one cut in the final edit, referencing a source clip's
// time range
type SceneSegment struct {
	ClipID           string  `json:"clipId"`
	StartTimeSeconds float64 `json:"startTimeSeconds"`
	DurationSeconds  float64 `json:"durationSeconds"`
	Transition       string  `json:"transition"`
	Description      string  `json:"description"`
}

// EditPlan is the complete ordered sequence of segments plus a soundtrack
// recommendation. Once returned it is never mutated; a new generation call
// supersedes it wholesale.
type EditPlan struct {
	Scenes         []SceneSegment `json:"scenes"`
	SoundtrackNote string         `json:"soundtrackNote"`
}
