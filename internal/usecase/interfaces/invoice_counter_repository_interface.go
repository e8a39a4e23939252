package interfaces

import "context"

// IInvoiceCounterRepository mints per-year invoice sequence numbers.
//
// NextSequence must be a single atomic upsert-and-increment against the
// counter store: two concurrent callers for the same year must never observe
// the same value. Gaps are fine (retries burn numbers), duplicates are not.

type IInvoiceCounterRepository interface {
	NextSequence(ctx context.Context, year int) (int64, error)
}
