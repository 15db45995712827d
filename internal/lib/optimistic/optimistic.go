// Package optimistic runs a mutation locally before the remote call that
// backs it: the proposed value is visible immediately, the server response
// is authoritative on success, and the snapshot is restored on failure.
package optimistic

import "context"

// Mutation describes one optimistic update over a locally mirrored value.
type Mutation[T any] struct {
	// Get reads the current local value.
	Get func() T
	// Set writes the local value.
	Set func(T)
	// Propose derives the optimistic value from the current one.
	Propose func(T) T
	// Attempt performs the remote call and returns the authoritative value.
	Attempt func(ctx context.Context) (T, error)
}

// Run applies the proposed value, attempts the remote call, then reconciles
// the local value with the server's answer or rolls back to the snapshot.
// The local value is only ever the snapshot or the proposed value until the
// call resolves. There is no retry: a failed attempt leaves the snapshot in
// place and the error with the caller.
func (m Mutation[T]) Run(ctx context.Context) (T, error) {
	snapshot := m.Get()

	m.Set(m.Propose(snapshot))

	confirmed, err := m.Attempt(ctx)
	if err != nil {
		m.Set(snapshot)
		return snapshot, err
	}

	// Server wins, even when it disagrees with the optimistic guess.
	m.Set(confirmed)

	return confirmed, nil
}
