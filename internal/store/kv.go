package store

// KV is the minimal key-value surface the content layer reads and writes.
// The MySQL store backs it in production, the memory store in tests.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}
