package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import "context"

// KVStore is the storage port of the application: a flat namespace of
// string keys holding JSON documents. Writes are last-writer-wins.
//
// Keys must be built with the Key* helpers of this package.
type KVStore interface {
	// Get returns the value stored under key. found is false when the key
	// does not exist; that is not an error.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set creates or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error

	// List returns all keys starting with prefix, in ascending order.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ErrorClassificator decides whether a failed write may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
