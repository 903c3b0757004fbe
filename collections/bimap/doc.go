// Package bimap provides Map, a thread-safe bijection between keys and
// values.
//
//	codes := bimap.New[string, int]()
//	_ = codes.Add("ok", 200)
//	name, _ := codes.Key(200) // "ok"
//
// Add refuses a key or value that is already present; Set replaces both
// sides. A frozen Map rejects every mutation with collections.ErrReadOnly.
package bimap
