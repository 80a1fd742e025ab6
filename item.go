package jsonfeed

import "encoding/json"

// Item is a single entry (blog post, story, episode) in a feed's "items"
// array. A valid Item has "id" set and at least one of "content_html" or
// "content_text".
type Item struct {
	itemWrite
}

type itemRead struct {
	value map[string]any
}

// ID returns the unique identifier of the item.
//
// The ID should be unique across all items that have ever appeared in the
// feed; two items with the same ID are the same item. JSON Feed 1.0
// tolerated non-string IDs, but this model reads only JSON strings; use
// AsMap to inspect anything else.
func (i itemRead) ID() (string, bool, error) {
	return getString(i.value, "id")
}

// URL returns the URL the item represents.
func (i itemRead) URL() (string, bool, error) {
	return getString(i.value, "url")
}

// ExternalURL returns a related external URL.
func (i itemRead) ExternalURL() (string, bool, error) {
	return getString(i.value, "external_url")
}

// Title returns the item title.
func (i itemRead) Title() (string, bool, error) {
	return getString(i.value, "title")
}

// ContentHTML returns the HTML content of the item.
func (i itemRead) ContentHTML() (string, bool, error) {
	return getString(i.value, "content_html")
}

// ContentText returns the plain text content of the item.
func (i itemRead) ContentText() (string, bool, error) {
	return getString(i.value, "content_text")
}

// Summary returns a summary of the item.
func (i itemRead) Summary() (string, bool, error) {
	return getString(i.value, "summary")
}

// Image returns the URL of an image representing the item.
func (i itemRead) Image() (string, bool, error) {
	return getString(i.value, "image")
}

// BannerImage returns the URL of a banner image for the item.
func (i itemRead) BannerImage() (string, bool, error) {
	return getString(i.value, "banner_image")
}

// DatePublished returns the RFC 3339 publication date string. The value
// is type-tagged as a string only; it is not parsed.
func (i itemRead) DatePublished() (string, bool, error) {
	return getString(i.value, "date_published")
}

// DateModified returns the RFC 3339 modification date string.
func (i itemRead) DateModified() (string, bool, error) {
	return getString(i.value, "date_modified")
}

// Author returns the singular author.
//
// The "author" key is deprecated in favor of "authors" as of JSON Feed
// 1.1. The two keys are independent; version-agnostic callers must check
// both.
func (i itemRead) Author() (AuthorRef, bool, error) {
	return getWrapped(i.value, "author", newAuthorRef)
}

// Authors returns the authors array (JSON Feed 1.1).
func (i itemRead) Authors() ([]AuthorRef, bool, error) {
	return getWrappedArray(i.value, "authors", newAuthorRef)
}

// Tags returns the plain text tags.
func (i itemRead) Tags() ([]string, bool, error) {
	return getStringArray(i.value, "tags")
}

// Language returns the RFC 5646 language the item is written in.
func (i itemRead) Language() (string, bool, error) {
	return getString(i.value, "language")
}

// Attachments returns the item's attachments.
func (i itemRead) Attachments() ([]AttachmentRef, bool, error) {
	return getWrappedArray(i.value, "attachments", newAttachmentRef)
}

// AsMap exposes the backing JSON object.
func (i itemRead) AsMap() map[string]any {
	return i.value
}

func (i itemRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.value)
}

type itemWrite struct {
	itemRead
}

// SetID sets the ID, returning the previous value, if any.
func (i itemWrite) SetID(v string) (any, bool) {
	return setKey(i.value, "id", v)
}

// RemoveID removes the ID, returning the removed value, if any.
func (i itemWrite) RemoveID() (any, bool) {
	return removeKey(i.value, "id")
}

// SetURL sets the URL, returning the previous value, if any.
func (i itemWrite) SetURL(v string) (any, bool) {
	return setKey(i.value, "url", v)
}

// RemoveURL removes the URL, returning the removed value, if any.
func (i itemWrite) RemoveURL() (any, bool) {
	return removeKey(i.value, "url")
}

// SetExternalURL sets the external URL, returning the previous value, if any.
func (i itemWrite) SetExternalURL(v string) (any, bool) {
	return setKey(i.value, "external_url", v)
}

// RemoveExternalURL removes the external URL, returning the removed value, if any.
func (i itemWrite) RemoveExternalURL() (any, bool) {
	return removeKey(i.value, "external_url")
}

// SetTitle sets the title, returning the previous value, if any.
func (i itemWrite) SetTitle(v string) (any, bool) {
	return setKey(i.value, "title", v)
}

// RemoveTitle removes the title, returning the removed value, if any.
func (i itemWrite) RemoveTitle() (any, bool) {
	return removeKey(i.value, "title")
}

// SetContentHTML sets the HTML content, returning the previous value, if any.
func (i itemWrite) SetContentHTML(v string) (any, bool) {
	return setKey(i.value, "content_html", v)
}

// RemoveContentHTML removes the HTML content, returning the removed value, if any.
func (i itemWrite) RemoveContentHTML() (any, bool) {
	return removeKey(i.value, "content_html")
}

// SetContentText sets the plain text content, returning the previous value, if any.
func (i itemWrite) SetContentText(v string) (any, bool) {
	return setKey(i.value, "content_text", v)
}

// RemoveContentText removes the plain text content, returning the removed value, if any.
func (i itemWrite) RemoveContentText() (any, bool) {
	return removeKey(i.value, "content_text")
}

// SetSummary sets the summary, returning the previous value, if any.
func (i itemWrite) SetSummary(v string) (any, bool) {
	return setKey(i.value, "summary", v)
}

// RemoveSummary removes the summary, returning the removed value, if any.
func (i itemWrite) RemoveSummary() (any, bool) {
	return removeKey(i.value, "summary")
}

// SetImage sets the image URL, returning the previous value, if any.
func (i itemWrite) SetImage(v string) (any, bool) {
	return setKey(i.value, "image", v)
}

// RemoveImage removes the image URL, returning the removed value, if any.
func (i itemWrite) RemoveImage() (any, bool) {
	return removeKey(i.value, "image")
}

// SetBannerImage sets the banner image URL, returning the previous value, if any.
func (i itemWrite) SetBannerImage(v string) (any, bool) {
	return setKey(i.value, "banner_image", v)
}

// RemoveBannerImage removes the banner image URL, returning the removed value, if any.
func (i itemWrite) RemoveBannerImage() (any, bool) {
	return removeKey(i.value, "banner_image")
}

// SetDatePublished sets the publication date string, returning the
// previous value, if any.
func (i itemWrite) SetDatePublished(v string) (any, bool) {
	return setKey(i.value, "date_published", v)
}

// RemoveDatePublished removes the publication date, returning the removed value, if any.
func (i itemWrite) RemoveDatePublished() (any, bool) {
	return removeKey(i.value, "date_published")
}

// SetDateModified sets the modification date string, returning the
// previous value, if any.
func (i itemWrite) SetDateModified(v string) (any, bool) {
	return setKey(i.value, "date_modified", v)
}

// RemoveDateModified removes the modification date, returning the removed value, if any.
func (i itemWrite) RemoveDateModified() (any, bool) {
	return removeKey(i.value, "date_modified")
}

// AuthorMut returns a read-write view of the singular author.
func (i itemWrite) AuthorMut() (AuthorMut, bool, error) {
	return getWrapped(i.value, "author", newAuthorMut)
}

// SetAuthor sets the singular author, storing its backing object,
// returning the previous value, if any.
func (i itemWrite) SetAuthor(a *Author) (any, bool) {
	return setKey(i.value, "author", a.AsMap())
}

// RemoveAuthor removes the singular author, returning the removed value, if any.
func (i itemWrite) RemoveAuthor() (any, bool) {
	return removeKey(i.value, "author")
}

// AuthorsMut returns read-write views of the authors array.
func (i itemWrite) AuthorsMut() ([]AuthorMut, bool, error) {
	return getWrappedArray(i.value, "authors", newAuthorMut)
}

// SetAuthors sets the authors array, returning the previous value, if any.
func (i itemWrite) SetAuthors(authors ...*Author) (any, bool) {
	return setKey(i.value, "authors", objectsOf(authors))
}

// RemoveAuthors removes the authors array, returning the removed value, if any.
func (i itemWrite) RemoveAuthors() (any, bool) {
	return removeKey(i.value, "authors")
}

// SetTags sets the tags, returning the previous value, if any.
func (i itemWrite) SetTags(tags ...string) (any, bool) {
	arr := make([]any, len(tags))
	for n, t := range tags {
		arr[n] = t
	}
	return setKey(i.value, "tags", arr)
}

// RemoveTags removes the tags, returning the removed value, if any.
func (i itemWrite) RemoveTags() (any, bool) {
	return removeKey(i.value, "tags")
}

// SetLanguage sets the language, returning the previous value, if any.
func (i itemWrite) SetLanguage(v string) (any, bool) {
	return setKey(i.value, "language", v)
}

// RemoveLanguage removes the language, returning the removed value, if any.
func (i itemWrite) RemoveLanguage() (any, bool) {
	return removeKey(i.value, "language")
}

// AttachmentsMut returns read-write views of the attachments array.
func (i itemWrite) AttachmentsMut() ([]AttachmentMut, bool, error) {
	return getWrappedArray(i.value, "attachments", newAttachmentMut)
}

// SetAttachments sets the attachments array, returning the previous value, if any.
func (i itemWrite) SetAttachments(attachments ...*Attachment) (any, bool) {
	return setKey(i.value, "attachments", objectsOf(attachments))
}

// RemoveAttachments removes the attachments array, returning the removed value, if any.
func (i itemWrite) RemoveAttachments() (any, bool) {
	return removeKey(i.value, "attachments")
}

// NewItem returns an Item backed by an empty JSON object.
func NewItem() *Item {
	return wrapItem(map[string]any{})
}

// ItemFromMap wraps an existing JSON object without copying it.
func ItemFromMap(m map[string]any) *Item {
	return wrapItem(m)
}

func wrapItem(m map[string]any) *Item {
	return &Item{itemWrite{itemRead{value: m}}}
}

// Clone returns an Item backed by a deep copy of the object.
func (i *Item) Clone() *Item {
	return wrapItem(deepCopyMap(i.value))
}

// Ref returns a read-only view sharing the backing object.
func (i *Item) Ref() ItemRef {
	return ItemRef{i.itemRead}
}

// Mut returns a read-write view sharing the backing object.
func (i *Item) Mut() ItemMut {
	return ItemMut{i.itemWrite}
}

func (i *Item) UnmarshalJSON(b []byte) error {
	m, err := unmarshalObject(b)
	if err != nil {
		return err
	}
	i.value = m
	return nil
}

// ItemRef is a read-only view over a JSON object owned elsewhere.
type ItemRef struct {
	itemRead
}

func newItemRef(m map[string]any) ItemRef {
	return ItemRef{itemRead{value: m}}
}

// ToItem deep-copies the viewed object into an owning Item.
func (i ItemRef) ToItem() *Item {
	return wrapItem(deepCopyMap(i.value))
}

// ItemMut is a read-write view over a JSON object owned elsewhere.
type ItemMut struct {
	itemWrite
}

func newItemMut(m map[string]any) ItemMut {
	return ItemMut{itemWrite{itemRead{value: m}}}
}

// ToItem deep-copies the viewed object into an owning Item.
func (i ItemMut) ToItem() *Item {
	return wrapItem(deepCopyMap(i.value))
}
