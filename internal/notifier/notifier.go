// Package notifier publishes domain notifications for external
// consumers (mail fan-out, push, analytics). The service fires and
// forgets; delivery is the consumer's problem.
package notifier

import "context"

type Notifier interface {
	// ShowAdded announces that a batch of shows was scheduled for the
	// named event. Called exactly once per successful batch.
	ShowAdded(ctx context.Context, eventName string) error
}
