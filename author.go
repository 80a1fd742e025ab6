package jsonfeed

import "encoding/json"

// authorRead holds the getter surface shared by all three Author forms.
type authorRead struct {
	value map[string]any
}

// Name returns the author's name.
func (a authorRead) Name() (string, bool, error) {
	return getString(a.value, "name")
}

// URL returns the URL of a site which represents the author.
func (a authorRead) URL() (string, bool, error) {
	return getString(a.value, "url")
}

// Avatar returns the URL of an image which represents the author.
func (a authorRead) Avatar() (string, bool, error) {
	return getString(a.value, "avatar")
}

// AsMap exposes the backing JSON object. It is the escape hatch for keys
// the typed API does not model, such as "_"-prefixed extensions.
func (a authorRead) AsMap() map[string]any {
	return a.value
}

func (a authorRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value)
}

// authorWrite adds the setter and remover surface.
type authorWrite struct {
	authorRead
}

// SetName sets the name, returning the previous value, if any.
func (a authorWrite) SetName(v string) (any, bool) {
	return setKey(a.value, "name", v)
}

// RemoveName removes the name, returning the removed value, if any.
func (a authorWrite) RemoveName() (any, bool) {
	return removeKey(a.value, "name")
}

// SetURL sets the URL, returning the previous value, if any.
func (a authorWrite) SetURL(v string) (any, bool) {
	return setKey(a.value, "url", v)
}

// RemoveURL removes the URL, returning the removed value, if any.
func (a authorWrite) RemoveURL() (any, bool) {
	return removeKey(a.value, "url")
}

// SetAvatar sets the avatar URL, returning the previous value, if any.
func (a authorWrite) SetAvatar(v string) (any, bool) {
	return setKey(a.value, "avatar", v)
}

// RemoveAvatar removes the avatar URL, returning the removed value, if any.
func (a authorWrite) RemoveAvatar() (any, bool) {
	return removeKey(a.value, "avatar")
}

// Author is an author of a feed or of a single item, owning its backing
// JSON object. All of name, url, and avatar are optional; the format asks
// for at least one of them to be present.
type Author struct {
	authorWrite
}

// NewAuthor returns an Author backed by an empty JSON object.
func NewAuthor() *Author {
	return wrapAuthor(map[string]any{})
}

// AuthorFromMap wraps an existing JSON object without copying it; the
// caller and the Author share the map.
func AuthorFromMap(m map[string]any) *Author {
	return wrapAuthor(m)
}

func wrapAuthor(m map[string]any) *Author {
	return &Author{authorWrite{authorRead{value: m}}}
}

// Clone returns an Author backed by a deep copy of the object.
func (a *Author) Clone() *Author {
	return wrapAuthor(deepCopyMap(a.value))
}

// Ref returns a read-only view sharing the backing object.
func (a *Author) Ref() AuthorRef {
	return AuthorRef{a.authorRead}
}

// Mut returns a read-write view sharing the backing object.
func (a *Author) Mut() AuthorMut {
	return AuthorMut{a.authorWrite}
}

func (a *Author) UnmarshalJSON(b []byte) error {
	m, err := unmarshalObject(b)
	if err != nil {
		return err
	}
	a.value = m
	return nil
}

// AuthorRef is a read-only view over a JSON object owned elsewhere.
type AuthorRef struct {
	authorRead
}

func newAuthorRef(m map[string]any) AuthorRef {
	return AuthorRef{authorRead{value: m}}
}

// ToAuthor deep-copies the viewed object into an owning Author.
func (a AuthorRef) ToAuthor() *Author {
	return wrapAuthor(deepCopyMap(a.value))
}

// AuthorMut is a read-write view over a JSON object owned elsewhere.
type AuthorMut struct {
	authorWrite
}

func newAuthorMut(m map[string]any) AuthorMut {
	return AuthorMut{authorWrite{authorRead{value: m}}}
}

// ToAuthor deep-copies the viewed object into an owning Author.
func (a AuthorMut) ToAuthor() *Author {
	return wrapAuthor(deepCopyMap(a.value))
}
