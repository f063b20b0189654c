package localstorage

import (
	"encoding/json"
)

// LocalStorage is a process-local typed key-value store. It backs data that
// belongs to this single instance, like the settings map.
type LocalStorage[T any] interface {
	// Get retrieves a value; a missing key returns the zero value, not an error.
	Get(key string) (T, error)

	// Set stores a value under key.
	Set(key string, value T) error

	// Delete removes a key.
	Delete(key string) error

	// ForEach iterates all entries in key order.
	ForEach(func(key string, value T) error) error

	// Close releases the underlying store.
	Close() error

	// Clean wipes the store from disk.
	Clean() error
}

type (
	MarshalFunc   func(v any) ([]byte, error)
	UnmarshalFunc func(data []byte, v any) error
)

var (
	Marshal   MarshalFunc   = json.Marshal
	Unmarshal UnmarshalFunc = json.Unmarshal
)
