// Package record defines the identity contract shared by everything kept in
// a store, along with Entity, a schemaless record decoded from JSON.
package record

// Record is any value carrying a unique identifier. The store interprets
// nothing about a record beyond its identifier.
type Record[K comparable] interface {
	RecordID() K
}

// IsNull reports whether id is the zero value of its type. The zero value
// stands for "no such record" and is never used as a storage key.
func IsNull[K comparable](id K) bool {
	var zero K
	return id == zero
}
