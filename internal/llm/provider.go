package llm

import "context"

// Request describes a single-turn generation request.
type Request struct {
	// System is the static instruction payload. It sets the model's role
	// and output constraints and is never derived from caller input.
	System string

	// Prompt is the user-turn text. Caller-supplied values are embedded
	// verbatim; the transport's JSON encoding is the only escaping applied.
	Prompt string
}

// Provider is the abstraction over an external generative model. Every
// implementation requests JSON-formatted output through the provider's
// native mechanism, but the returned string is still untrusted free-form
// text as far as callers are concerned.
//
// Failures are reported as *domain.DomainError: CodeInvalidAPIKey when the
// upstream rejects the credential, CodeExternalService for every other
// transport or status failure.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}
