package plan

// InvalidRequestError is the one failure a plan request surfaces to the
// caller: no meaningful plan can be built from malformed source material.
// Everything else is absorbed into the fallback.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid plan request: " + e.Reason
}
