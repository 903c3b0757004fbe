// Package multimap provides Map, a thread-safe map from a key to an ordered
// list of values.
//
// # Stable reads
//
// Get returns a collections.Snapshot of the key's values. Writers never
// touch a list after it has been handed out; they build a new one and swap
// it in, so a snapshot keeps its contents for as long as the caller holds
// it.
//
//	routes := multimap.New[string, string]()
//	routes.Add("GET", "/users", "/orders")
//	for path := range routes.Get("GET").Values() {
//	    fmt.Println(path)
//	}
//
// # Encoding
//
// Map encodes to and decodes from a JSON object or YAML mapping whose values
// are arrays, which lets it sit directly in a configuration struct.
package multimap
