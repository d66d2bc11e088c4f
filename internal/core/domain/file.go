package domain

import "time"

// File is a single file record produced by a directory scan.
type File struct {
	// Path is the file path relative to the scanned root.
	Path string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the file's last modification time.
	ModTime time.Time

	// Hash is the xxhash of the file content. Zero when hashing was skipped.
	Hash uint64
}
