package plan

// ResultKind tags the outcome of one generation attempt
type ResultKind int

const (
	// ResultSuccess carries a raw payload that still needs structural validation
	ResultSuccess ResultKind = iota
	// ResultCredentialMissing means no provider credential was resolvable
	ResultCredentialMissing
	// ResultTransportFailure covers network faults, remote errors and empty bodies
	ResultTransportFailure
	// ResultMalformedPayload means the payload failed structural validation
	ResultMalformedPayload
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultCredentialMissing:
		return "credential_missing"
	case ResultTransportFailure:
		return "transport_failure"
	case ResultMalformedPayload:
		return "malformed_payload"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a generation call, consumed exhaustively
// when resolving the final plan. Payload is set only for ResultSuccess; Err
// carries the underlying cause for the failure kinds.
type Result struct {
	Kind    ResultKind
	Payload string
	Err     error
}
