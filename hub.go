package jsonfeed

import "encoding/json"

// Hub is a subscription endpoint that delivers feed update notifications.
// A valid Hub has both "type" and "url" set.
type Hub struct {
	hubWrite
}

type hubRead struct {
	value map[string]any
}

// Type returns the protocol used to subscribe with.
func (h hubRead) Type() (string, bool, error) {
	return getString(h.value, "type")
}

// URL returns the type-specific URL used to subscribe with.
func (h hubRead) URL() (string, bool, error) {
	return getString(h.value, "url")
}

// AsMap exposes the backing JSON object.
func (h hubRead) AsMap() map[string]any {
	return h.value
}

func (h hubRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.value)
}

type hubWrite struct {
	hubRead
}

// SetType sets the type, returning the previous value, if any.
func (h hubWrite) SetType(v string) (any, bool) {
	return setKey(h.value, "type", v)
}

// RemoveType removes the type, returning the removed value, if any.
func (h hubWrite) RemoveType() (any, bool) {
	return removeKey(h.value, "type")
}

// SetURL sets the URL, returning the previous value, if any.
func (h hubWrite) SetURL(v string) (any, bool) {
	return setKey(h.value, "url", v)
}

// RemoveURL removes the URL, returning the removed value, if any.
func (h hubWrite) RemoveURL() (any, bool) {
	return removeKey(h.value, "url")
}

// NewHub returns a Hub backed by an empty JSON object.
func NewHub() *Hub {
	return wrapHub(map[string]any{})
}

// HubFromMap wraps an existing JSON object without copying it.
func HubFromMap(m map[string]any) *Hub {
	return wrapHub(m)
}

func wrapHub(m map[string]any) *Hub {
	return &Hub{hubWrite{hubRead{value: m}}}
}

// Clone returns a Hub backed by a deep copy of the object.
func (h *Hub) Clone() *Hub {
	return wrapHub(deepCopyMap(h.value))
}

// Ref returns a read-only view sharing the backing object.
func (h *Hub) Ref() HubRef {
	return HubRef{h.hubRead}
}

// Mut returns a read-write view sharing the backing object.
func (h *Hub) Mut() HubMut {
	return HubMut{h.hubWrite}
}

func (h *Hub) UnmarshalJSON(b []byte) error {
	m, err := unmarshalObject(b)
	if err != nil {
		return err
	}
	h.value = m
	return nil
}

// HubRef is a read-only view over a JSON object owned elsewhere.
type HubRef struct {
	hubRead
}

func newHubRef(m map[string]any) HubRef {
	return HubRef{hubRead{value: m}}
}

// ToHub deep-copies the viewed object into an owning Hub.
func (h HubRef) ToHub() *Hub {
	return wrapHub(deepCopyMap(h.value))
}

// HubMut is a read-write view over a JSON object owned elsewhere.
type HubMut struct {
	hubWrite
}

func newHubMut(m map[string]any) HubMut {
	return HubMut{hubWrite{hubRead{value: m}}}
}

// ToHub deep-copies the viewed object into an owning Hub.
func (h HubMut) ToHub() *Hub {
	return wrapHub(deepCopyMap(h.value))
}
