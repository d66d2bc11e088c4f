package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheMiss is returned when a cache entry does not exist and no
	// default value was supplied.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrCacheAlreadyInitialized is returned when a process-wide default
	// cache is registered while one already exists.
	ErrCacheAlreadyInitialized = zerr.New("cache already initialized")

	// ErrInvalidVersion is returned when a version string cannot be parsed.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidConfig is returned when the application configuration fails
	// validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrPoolClosed is returned when a task is submitted to a pool that has
	// already been waited on.
	ErrPoolClosed = zerr.New("pool closed")
)
