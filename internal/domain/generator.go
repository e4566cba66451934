package domain

import "context"

// QuizGenerator authors a quiz on an arbitrary topic by delegating to an
// external generative model. Implementations are stateless; concurrent
// calls are independent and share nothing beyond the transport client.
//
// Generate fails with a DomainError carrying CodeExternalService (or its
// CodeInvalidAPIKey variant) when the upstream call fails, and
// CodeMalformedResponse when the upstream replied successfully but the
// payload could not be shaped into a quiz.
type QuizGenerator interface {
	Generate(ctx context.Context, topic string) (*Quiz, error)
}
