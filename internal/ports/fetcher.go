package ports

import "context"

type FetcherPort interface {
	// EnsureArtifact returns a local path to the archive at url,
	// downloading it unless a cached copy with the given sha256
	// already exists.
	EnsureArtifact(ctx context.Context, url string, sha256 string) (string, error)
}

type VerifierPort interface {
	// Verify checks the detached signature next to path. A missing
	// signature is an error; so is a bad one.
	Verify(ctx context.Context, path string) error
}
