package booter

import (
	"os"
	"sort"
)

// Implicit system property keys, always present
const (
	BasedirProperty         = "basedir"
	LocalRepositoryProperty = "localRepository"
)

// Properties is an immutable, insertion-ordered set of system properties
type Properties struct {
	keys   []string
	values map[string]string
}

// With returns a copy holding key=value. An existing key keeps its position.
func (p Properties) With(key, value string) Properties {
	next := Properties{
		keys:   append([]string(nil), p.keys...),
		values: make(map[string]string, len(p.values)+1),
	}
	for k, v := range p.values {
		next.values[k] = v
	}
	if _, ok := next.values[key]; !ok {
		next.keys = append(next.keys, key)
	}
	next.values[key] = value
	return next
}

// Get returns the value of key
func (p Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the keys in insertion order
func (p Properties) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Len returns the number of properties
func (p Properties) Len() int {
	return len(p.keys)
}

// Map returns a copy of the properties as a map
func (p Properties) Map() map[string]string {
	m := make(map[string]string, len(p.values))
	for k, v := range p.values {
		m[k] = v
	}
	return m
}

// sortedKeys returns the map's keys sorted so merges are deterministic
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExportProperties writes every property into the process environment under its own name.
// It exists for test code that can only read process-wide state. Concurrent builds in one
// process race on these writes.
func ExportProperties(p Properties) error {
	for _, key := range p.keys {
		if err := os.Setenv(key, p.values[key]); err != nil {
			return err
		}
	}
	return nil
}
