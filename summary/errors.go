package summary

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrSummarizerRequired is returned when a Service is built without a summarizer.
	ErrSummarizerRequired = errors.New("summarizer is required")

	// ErrRepositoryRequired is returned when a Service is built without a cache.
	ErrRepositoryRequired = errors.New("summary repository is required")

	// ErrServiceRequired is returned when a Batch is built without a Service.
	ErrServiceRequired = errors.New("summary service is required")

	// ErrInvalidWorkers is returned for a worker count below one.
	ErrInvalidWorkers = errors.New("workers must be greater than 0")

	// ErrInvalidRate is returned for a negative request rate.
	ErrInvalidRate = errors.New("rate must not be negative")
)
