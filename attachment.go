package jsonfeed

import "encoding/json"

// Attachment is a resource related to an Item, such as an audio or video
// file. A valid Attachment has both "url" and "mime_type" set.
type Attachment struct {
	attachmentWrite
}

type attachmentRead struct {
	value map[string]any
}

// URL returns the location of the attachment.
func (a attachmentRead) URL() (string, bool, error) {
	return getString(a.value, "url")
}

// MimeType returns the MIME type of the attachment (e.g. image/png).
func (a attachmentRead) MimeType() (string, bool, error) {
	return getString(a.value, "mime_type")
}

// Title returns the attachment title. Attachments with the same title are
// alternative representations of the same resource.
func (a attachmentRead) Title() (string, bool, error) {
	return getString(a.value, "title")
}

// SizeInBytes returns the size of the attachment in bytes.
func (a attachmentRead) SizeInBytes() (uint64, bool, error) {
	return getUint64(a.value, "size_in_bytes")
}

// DurationInSeconds returns the duration of the content in seconds.
func (a attachmentRead) DurationInSeconds() (uint64, bool, error) {
	return getUint64(a.value, "duration_in_seconds")
}

// AsMap exposes the backing JSON object.
func (a attachmentRead) AsMap() map[string]any {
	return a.value
}

func (a attachmentRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value)
}

type attachmentWrite struct {
	attachmentRead
}

// SetURL sets the URL, returning the previous value, if any.
func (a attachmentWrite) SetURL(v string) (any, bool) {
	return setKey(a.value, "url", v)
}

// RemoveURL removes the URL, returning the removed value, if any.
func (a attachmentWrite) RemoveURL() (any, bool) {
	return removeKey(a.value, "url")
}

// SetMimeType sets the MIME type, returning the previous value, if any.
func (a attachmentWrite) SetMimeType(v string) (any, bool) {
	return setKey(a.value, "mime_type", v)
}

// RemoveMimeType removes the MIME type, returning the removed value, if any.
func (a attachmentWrite) RemoveMimeType() (any, bool) {
	return removeKey(a.value, "mime_type")
}

// SetTitle sets the title, returning the previous value, if any.
func (a attachmentWrite) SetTitle(v string) (any, bool) {
	return setKey(a.value, "title", v)
}

// RemoveTitle removes the title, returning the removed value, if any.
func (a attachmentWrite) RemoveTitle() (any, bool) {
	return removeKey(a.value, "title")
}

// SetSizeInBytes sets the size in bytes, returning the previous value, if
// any. The number is stored as a JSON number (IEEE-754 double).
func (a attachmentWrite) SetSizeInBytes(v uint64) (any, bool) {
	return setKey(a.value, "size_in_bytes", float64(v))
}

// RemoveSizeInBytes removes the size, returning the removed value, if any.
func (a attachmentWrite) RemoveSizeInBytes() (any, bool) {
	return removeKey(a.value, "size_in_bytes")
}

// SetDurationInSeconds sets the duration in seconds, returning the
// previous value, if any.
func (a attachmentWrite) SetDurationInSeconds(v uint64) (any, bool) {
	return setKey(a.value, "duration_in_seconds", float64(v))
}

// RemoveDurationInSeconds removes the duration, returning the removed
// value, if any.
func (a attachmentWrite) RemoveDurationInSeconds() (any, bool) {
	return removeKey(a.value, "duration_in_seconds")
}

// NewAttachment returns an Attachment backed by an empty JSON object.
func NewAttachment() *Attachment {
	return wrapAttachment(map[string]any{})
}

// AttachmentFromMap wraps an existing JSON object without copying it.
func AttachmentFromMap(m map[string]any) *Attachment {
	return wrapAttachment(m)
}

func wrapAttachment(m map[string]any) *Attachment {
	return &Attachment{attachmentWrite{attachmentRead{value: m}}}
}

// Clone returns an Attachment backed by a deep copy of the object.
func (a *Attachment) Clone() *Attachment {
	return wrapAttachment(deepCopyMap(a.value))
}

// Ref returns a read-only view sharing the backing object.
func (a *Attachment) Ref() AttachmentRef {
	return AttachmentRef{a.attachmentRead}
}

// Mut returns a read-write view sharing the backing object.
func (a *Attachment) Mut() AttachmentMut {
	return AttachmentMut{a.attachmentWrite}
}

func (a *Attachment) UnmarshalJSON(b []byte) error {
	m, err := unmarshalObject(b)
	if err != nil {
		return err
	}
	a.value = m
	return nil
}

// AttachmentRef is a read-only view over a JSON object owned elsewhere.
type AttachmentRef struct {
	attachmentRead
}

func newAttachmentRef(m map[string]any) AttachmentRef {
	return AttachmentRef{attachmentRead{value: m}}
}

// ToAttachment deep-copies the viewed object into an owning Attachment.
func (a AttachmentRef) ToAttachment() *Attachment {
	return wrapAttachment(deepCopyMap(a.value))
}

// AttachmentMut is a read-write view over a JSON object owned elsewhere.
type AttachmentMut struct {
	attachmentWrite
}

func newAttachmentMut(m map[string]any) AttachmentMut {
	return AttachmentMut{attachmentWrite{attachmentRead{value: m}}}
}

// ToAttachment deep-copies the viewed object into an owning Attachment.
func (a AttachmentMut) ToAttachment() *Attachment {
	return wrapAttachment(deepCopyMap(a.value))
}
