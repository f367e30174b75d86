package domain

import "context"

type Service interface {
	// Submit runs the intake pipeline: validate, rate-limit, persist,
	// best-effort notify. It returns a response only when persistence
	// succeeded; a failed notification is reported on the response, not
	// as an error.
	Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error)

	// List returns the most recent submissions, newest first.
	List(ctx context.Context, req ListRequest) ([]ContactSubmission, error)
}
