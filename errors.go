package jsonfeed

import "errors"

// ErrUnexpectedType reports that a recognized key is present but holds a
// JSON value of the wrong type, e.g. a "title" stored as a number.
// Getters wrap it with the offending key; setters and removers never
// return it (writes are untyped at the storage boundary).
var ErrUnexpectedType = errors.New("unexpected JSON type")

// ErrNotAnObject reports that a document's top-level JSON value is not an
// object. Returned by the From* constructors.
var ErrNotAnObject = errors.New("not a JSON object")
