package ports

import "context"

// ReminderLedger remembers the dates whose reminder batch was already sent.
type ReminderLedger interface {
	Has(ctx context.Context, date string) (bool, error)
	Mark(ctx context.Context, date string) error
	Clear(ctx context.Context) error
}
