package api

import "github.com/riffcut/riffcut-server/internal/plan"

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	UptimeS int64  `json:"uptime_s"`
}

// PlanRequest is the generate call the browser UI makes: the current project
// configuration plus the imported clip descriptors.
type PlanRequest struct {
	Project plan.ProjectConfiguration `json:"project"`
	Clips   []plan.ClipDescriptor     `json:"clips"`
}

type ImportClipRequest struct {
	Name string `json:"name"`
	// DurationSeconds overrides the inferred estimate when the caller knows
	// the real clip length
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// resolveProject fills zero-valued fields from the session defaults, so a
// fresh UI can post a partial configuration.
func resolveProject(p plan.ProjectConfiguration) plan.ProjectConfiguration {
	def := plan.DefaultProject()
	if p.Title == "" {
		p.Title = def.Title
	}
	if p.Resolution == "" {
		p.Resolution = def.Resolution
	}
	if p.TargetDurationSeconds <= 0 {
		p.TargetDurationSeconds = def.TargetDurationSeconds
	}
	if p.AspectRatio == "" {
		p.AspectRatio = def.AspectRatio
	}
	if p.MusicalFocus == "" {
		p.MusicalFocus = def.MusicalFocus
	}
	return p
}
