// Package jsonfeed provides a typed model of the JSON Feed syndication
// format (https://jsonfeed.org) on top of a plain JSON object.
//
// Every entity (Feed, Item, Author, Attachment, Hub) is a thin view over a
// map[string]any. Typed accessors read and write through the map without
// copying it into a struct, so a document round-trips byte-for-byte in
// structure: keys the package does not model are never dropped or
// reordered away.
//
// # Quick Start
//
//	feed, err := jsonfeed.FromBytes(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	title, ok, err := feed.Title()
//	if err != nil {
//	    // "title" is present but not a JSON string
//	}
//	if ok {
//	    fmt.Println(title)
//	}
//
//	if err := feed.Validate(jsonfeed.Version1_1); err != nil {
//	    fmt.Println(err)
//	}
//
// # Accessor Semantics
//
// Getters return (value, ok, err). Absence is not an error: a missing key
// yields the zero value, ok=false, and a nil error. A present key whose
// JSON type does not match the field's declared type yields an error
// wrapping ErrUnexpectedType. Accessors never coerce: a numeric "title" is
// a type mismatch, not a string.
//
// Setters insert or overwrite and report the previous value at the key, if
// any. Removers delete and report the removed value. Neither can fail.
//
// # Extension Fields
//
// JSON Feed reserves keys starting with "_" for custom extensions. The
// typed API does not model them; AsMap exposes the backing map directly
// for reading and writing any key. AsMap is stable API, not an internal
// detail. Extension and unknown keys survive every read, write, and
// serialize cycle untouched.
//
// # Ownership Forms
//
// Each entity comes in three forms: an owning form (Feed), a read-only
// view (FeedRef), and a read-write view (FeedMut). The views share the
// owner's backing map; Go does not enforce the aliasing discipline, so the
// read-only contract of the Ref forms is by convention. Converting a view
// back to an owning form (ToFeed and friends) deep-copies the map.
//
// # Concurrency
//
// All types are safe for concurrent reads. A single writer requires
// external synchronization against any other access to the same backing
// map. Validate and IsValid never mutate and are read-safe.
//
// # Subpackages
//
//   - canonicaljson: RFC 8785 (JCS) deterministic serialization of feed
//     documents, for hashing, diffing, and golden tests
package jsonfeed
