// Package store implements the in-memory reactive state container: one
// slice per entity kind composed into a single aggregate. Mutations
// update memory synchronously and queue outbound effects (persist,
// notify) drained by a worker goroutine, so callers never wait on
// storage or messaging. In-memory state is authoritative for the
// running instance; the reconciler converges storage to it.
package store

// Origin tags where a mutation came from. Local mutations queue
// outbound persist and notify effects; remote mutations are the landing
// side of an inbound broadcast and must never re-emit, or the
// notification loop would echo forever.
type Origin int

const (
	// OriginLocal marks a user-initiated mutation in this instance.
	OriginLocal Origin = iota
	// OriginRemote marks a mutation applied from an inbound broadcast.
	OriginRemote
)
