// Package assoc provides List, an insertion ordered association list whose
// records carry a key and two values.
//
// Unlike a Go map, List does NOT enforce key uniqueness: Add always appends,
// so several records may share a key. Lookup and Remove act on the first
// matching record only, and LookupAll returns every match. All queries are
// linear scans, which is fine for the small collections List is meant for.
//
// Keys and values are compared with ==. When a type argument is an interface
// type (for example List[int, any, any]), values whose dynamic type is not
// comparable, such as slices or maps, may be stored, but ContainsKey,
// ContainsValue, Lookup and Remove panic with a runtime error when they
// compare two values of the same uncomparable dynamic type.
//
// List is not safe for concurrent use. Wrap it in a SyncList when it is
// shared between goroutines.
package assoc
