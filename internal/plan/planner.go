package plan

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// Generator abstracts the remote generative provider. Implementations live in
// internal/llm/providers; each performs exactly one completion call per
// GeneratePlan invocation and returns the raw textual payload.
type Generator interface {
	// Name returns the provider name
	Name() string

	// IsEnabled returns whether the provider is configured with a credential
	IsEnabled() bool

	// GeneratePlan executes the request and returns the raw structured payload
	GeneratePlan(ctx context.Context, req Request) (string, error)
}

var errEmptyPayload = errors.New("empty response body")

// Planner is the collaborator-facing orchestrator. Generation is best-effort,
// completion is guaranteed: given at least one clip, BuildPlan always returns
// a usable EditPlan.
type Planner struct {
	gen    Generator
	logger *slog.Logger
}

// NewPlanner creates a planner backed by the given generator. gen may be nil
// when no provider is configured; every request then resolves via fallback.
func NewPlanner(gen Generator, logger *slog.Logger) *Planner {
	return &Planner{gen: gen, logger: logger}
}

// BuildPlan composes request building, the provider call and validation into
// the single public entry point. The only error it can return is
// *InvalidRequestError for an unusable clip set; all generation and parsing
// failures resolve to the deterministic fallback plan.
func (p *Planner) BuildPlan(ctx context.Context, project ProjectConfiguration, clips []ClipDescriptor) (EditPlan, error) {
	req, err := BuildRequest(project, clips)
	if err != nil {
		return EditPlan{}, err
	}

	res := p.generate(ctx, req)
	return p.resolve(res, project, clips), nil
}

// generate performs at most one outbound call. A missing credential fails
// fast before any network I/O; there are no retries and no caching.
func (p *Planner) generate(ctx context.Context, req Request) Result {
	if p.gen == nil || !p.gen.IsEnabled() {
		return Result{Kind: ResultCredentialMissing}
	}

	payload, err := p.gen.GeneratePlan(ctx, req)
	if err != nil {
		return Result{Kind: ResultTransportFailure, Err: err}
	}
	if strings.TrimSpace(payload) == "" {
		return Result{Kind: ResultTransportFailure, Err: errEmptyPayload}
	}

	return Result{Kind: ResultSuccess, Payload: payload}
}

// resolve consumes the generation result exhaustively and always yields a
// plan. A payload that parses but carries zero scenes is as unusable as a
// malformed one, so it takes the fallback path too.
func (p *Planner) resolve(res Result, project ProjectConfiguration, clips []ClipDescriptor) EditPlan {
	switch res.Kind {
	case ResultSuccess:
		parsed, err := ParsePlan(res.Payload, clips)
		if err == nil && len(parsed.Scenes) == 0 {
			err = errors.New("plan has no scenes")
		}
		if err == nil {
			p.logger.Info("generated plan accepted",
				"provider", p.gen.Name(),
				"scenes", len(parsed.Scenes),
			)
			return parsed
		}
		p.logger.Warn("provider payload rejected, synthesizing fallback plan", "error", err)

	case ResultCredentialMissing:
		p.logger.Warn("no provider credential, synthesizing fallback plan")

	case ResultTransportFailure:
		p.logger.Warn("generation failed, synthesizing fallback plan", "error", res.Err)

	case ResultMalformedPayload:
		p.logger.Warn("provider payload rejected, synthesizing fallback plan", "error", res.Err)
	}

	return SynthesizeFallback(project, clips)
}
