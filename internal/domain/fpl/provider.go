package fpl

import "context"

// Provider fetches upstream documents. Implementations fail on transport
// errors and malformed payloads; they never retry or cache.
type Provider interface {
	FetchBootstrap(ctx context.Context) (BootstrapDocument, error)
	FetchEntry(ctx context.Context, teamID int64) (EntryDocument, error)
	FetchPicks(ctx context.Context, teamID, gameweek int64) (PicksDocument, error)
}
