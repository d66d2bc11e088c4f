package ports

// FileHasher computes content hashes and cache-key fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type FileHasher interface {
	// HashFile computes the content hash of the file at path.
	HashFile(path string) (uint64, error)

	// Fingerprint derives a stable hex fingerprint from the given parts.
	Fingerprint(parts ...string) string
}
