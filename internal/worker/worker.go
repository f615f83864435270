package worker

import "context"

// Worker is a long-running background process. Start blocks until ctx is cancelled.
type Worker interface {
	Start(ctx context.Context)
}
