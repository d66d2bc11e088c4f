package ports

import "context"

// ReleaseSource fetches raw content from a release repository, typically
// over HTTP.
//
//go:generate go run go.uber.org/mock/mockgen -source=release_source.go -destination=mocks/mock_release_source.go -package=mocks
type ReleaseSource interface {
	// Fetch returns the raw content at the given URL. A non-200 response is
	// an error.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
