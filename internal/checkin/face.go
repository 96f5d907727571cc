package checkin

import (
	"context"
	"errors"
)

// Matcher resolves a captured face image to a student profile ID, feeding
// the same eligibility gate as code-based check-in.
type Matcher interface {
	Identify(ctx context.Context, capture []byte) (int, error)
}

var ErrMatchNotImplemented = errors.New("face matching not implemented")

// StubMatcher is the only Matcher implementation. Real embedding comparison
// was never built; the stub fails loudly instead of guessing a match.
type StubMatcher struct{}

func (StubMatcher) Identify(ctx context.Context, capture []byte) (int, error) {
	return 0, ErrMatchNotImplemented
}
