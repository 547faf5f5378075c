package plan

import (
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
)

// MaxClips bounds the clip collection size per project
const MaxClips = 10

// DescribeClip mints a descriptor for a newly imported source file. There is
// no real media analysis: duration and energy are inferred deterministically
// from the file name, so repeated imports of the same name always describe
// identically (IDs are fresh per import).
func DescribeClip(name string) ClipDescriptor {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()

	return ClipDescriptor{
		ID:              uuid.NewString(),
		Name:            name,
		DurationSeconds: float64(6 + sum%25), // 6..30s
		EnergyLevel:     inferEnergy(sum),
	}
}

func inferEnergy(sum uint32) EnergyLevel {
	switch (sum / 7) % 3 {
	case 0:
		return EnergyLow
	case 1:
		return EnergyMedium
	default:
		return EnergyHigh
	}
}

// ValidateClips enforces the collection invariants: 1..MaxClips entries and
// unique IDs.
func ValidateClips(clips []ClipDescriptor) error {
	if len(clips) == 0 {
		return &InvalidRequestError{Reason: "at least one clip is required"}
	}
	if len(clips) > MaxClips {
		return &InvalidRequestError{Reason: fmt.Sprintf("too many clips: %d (max %d)", len(clips), MaxClips)}
	}

	seen := make(map[string]struct{}, len(clips))
	for _, c := range clips {
		if c.ID == "" {
			return &InvalidRequestError{Reason: fmt.Sprintf("clip %q has no id", c.Name)}
		}
		if _, dup := seen[c.ID]; dup {
			return &InvalidRequestError{Reason: fmt.Sprintf("duplicate clip id %q", c.ID)}
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
