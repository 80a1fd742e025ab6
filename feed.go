package jsonfeed

import "encoding/json"

// Feed is the top-level JSON Feed document: a list of items plus
// metadata, backed by a single JSON object.
//
// The backing data is not guaranteed to be a valid feed; Validate and
// IsValid check it against a format version. A valid Feed has "version" set
// to a satisfying version URI, "title" set, and the "items" array present.
type Feed struct {
	feedWrite
}

type feedRead struct {
	value map[string]any
}

// Version returns the URI identifying the format revision the feed claims
// compliance with.
func (f feedRead) Version() (string, bool, error) {
	return getString(f.value, "version")
}

// Title returns the name of the feed.
func (f feedRead) Title() (string, bool, error) {
	return getString(f.value, "title")
}

// HomePageURL returns the URL of the resource the feed describes.
func (f feedRead) HomePageURL() (string, bool, error) {
	return getString(f.value, "home_page_url")
}

// FeedURL returns the URL the feed itself can be retrieved from.
func (f feedRead) FeedURL() (string, bool, error) {
	return getString(f.value, "feed_url")
}

// Description returns a description of the feed.
func (f feedRead) Description() (string, bool, error) {
	return getString(f.value, "description")
}

// UserComment returns a description intended only for readers of the raw
// JSON form.
func (f feedRead) UserComment() (string, bool, error) {
	return getString(f.value, "user_comment")
}

// NextURL returns the pagination URL of the next page of items.
func (f feedRead) NextURL() (string, bool, error) {
	return getString(f.value, "next_url")
}

// Icon returns the URL of an icon for use in lists of items.
func (f feedRead) Icon() (string, bool, error) {
	return getString(f.value, "icon")
}

// Favicon returns the URL of a favicon suitable for lists of feeds.
func (f feedRead) Favicon() (string, bool, error) {
	return getString(f.value, "favicon")
}

// Author returns the singular author.
//
// The "author" key is deprecated in favor of "authors" as of JSON Feed
// 1.1. The two keys are independent; version-agnostic callers must check
// both.
func (f feedRead) Author() (AuthorRef, bool, error) {
	return getWrapped(f.value, "author", newAuthorRef)
}

// Authors returns the authors array (JSON Feed 1.1).
func (f feedRead) Authors() ([]AuthorRef, bool, error) {
	return getWrappedArray(f.value, "authors", newAuthorRef)
}

// Language returns the RFC 5646 language the feed is written in.
func (f feedRead) Language() (string, bool, error) {
	return getString(f.value, "language")
}

// Expired reports whether the feed will never update again.
func (f feedRead) Expired() (bool, bool, error) {
	return getBool(f.value, "expired")
}

// Hubs returns the subscription endpoints for update notifications.
func (f feedRead) Hubs() ([]HubRef, bool, error) {
	return getWrappedArray(f.value, "hubs", newHubRef)
}

// Items returns the feed's items.
func (f feedRead) Items() ([]ItemRef, bool, error) {
	return getWrappedArray(f.value, "items", newItemRef)
}

// AsMap exposes the backing JSON object. It is the escape hatch for keys
// the typed API does not model, such as "_"-prefixed extensions.
func (f feedRead) AsMap() map[string]any {
	return f.value
}

func (f feedRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.value)
}

type feedWrite struct {
	feedRead
}

// SetVersion sets the version URI, returning the previous value, if any.
func (f feedWrite) SetVersion(v Version) (any, bool) {
	return setKey(f.value, "version", string(v))
}

// RemoveVersion removes the version URI, returning the removed value, if any.
func (f feedWrite) RemoveVersion() (any, bool) {
	return removeKey(f.value, "version")
}

// SetTitle sets the title, returning the previous value, if any.
func (f feedWrite) SetTitle(v string) (any, bool) {
	return setKey(f.value, "title", v)
}

// RemoveTitle removes the title, returning the removed value, if any.
func (f feedWrite) RemoveTitle() (any, bool) {
	return removeKey(f.value, "title")
}

// SetHomePageURL sets the home page URL, returning the previous value, if any.
func (f feedWrite) SetHomePageURL(v string) (any, bool) {
	return setKey(f.value, "home_page_url", v)
}

// RemoveHomePageURL removes the home page URL, returning the removed value, if any.
func (f feedWrite) RemoveHomePageURL() (any, bool) {
	return removeKey(f.value, "home_page_url")
}

// SetFeedURL sets the feed URL, returning the previous value, if any.
func (f feedWrite) SetFeedURL(v string) (any, bool) {
	return setKey(f.value, "feed_url", v)
}

// RemoveFeedURL removes the feed URL, returning the removed value, if any.
func (f feedWrite) RemoveFeedURL() (any, bool) {
	return removeKey(f.value, "feed_url")
}

// SetDescription sets the description, returning the previous value, if any.
func (f feedWrite) SetDescription(v string) (any, bool) {
	return setKey(f.value, "description", v)
}

// RemoveDescription removes the description, returning the removed value, if any.
func (f feedWrite) RemoveDescription() (any, bool) {
	return removeKey(f.value, "description")
}

// SetUserComment sets the user comment, returning the previous value, if any.
func (f feedWrite) SetUserComment(v string) (any, bool) {
	return setKey(f.value, "user_comment", v)
}

// RemoveUserComment removes the user comment, returning the removed value, if any.
func (f feedWrite) RemoveUserComment() (any, bool) {
	return removeKey(f.value, "user_comment")
}

// SetNextURL sets the pagination URL, returning the previous value, if any.
func (f feedWrite) SetNextURL(v string) (any, bool) {
	return setKey(f.value, "next_url", v)
}

// RemoveNextURL removes the pagination URL, returning the removed value, if any.
func (f feedWrite) RemoveNextURL() (any, bool) {
	return removeKey(f.value, "next_url")
}

// SetIcon sets the icon URL, returning the previous value, if any.
func (f feedWrite) SetIcon(v string) (any, bool) {
	return setKey(f.value, "icon", v)
}

// RemoveIcon removes the icon URL, returning the removed value, if any.
func (f feedWrite) RemoveIcon() (any, bool) {
	return removeKey(f.value, "icon")
}

// SetFavicon sets the favicon URL, returning the previous value, if any.
func (f feedWrite) SetFavicon(v string) (any, bool) {
	return setKey(f.value, "favicon", v)
}

// RemoveFavicon removes the favicon URL, returning the removed value, if any.
func (f feedWrite) RemoveFavicon() (any, bool) {
	return removeKey(f.value, "favicon")
}

// AuthorMut returns a read-write view of the singular author.
func (f feedWrite) AuthorMut() (AuthorMut, bool, error) {
	return getWrapped(f.value, "author", newAuthorMut)
}

// SetAuthor sets the singular author, storing its backing object,
// returning the previous value, if any.
func (f feedWrite) SetAuthor(a *Author) (any, bool) {
	return setKey(f.value, "author", a.AsMap())
}

// RemoveAuthor removes the singular author, returning the removed value, if any.
func (f feedWrite) RemoveAuthor() (any, bool) {
	return removeKey(f.value, "author")
}

// AuthorsMut returns read-write views of the authors array.
func (f feedWrite) AuthorsMut() ([]AuthorMut, bool, error) {
	return getWrappedArray(f.value, "authors", newAuthorMut)
}

// SetAuthors sets the authors array, returning the previous value, if any.
func (f feedWrite) SetAuthors(authors ...*Author) (any, bool) {
	return setKey(f.value, "authors", objectsOf(authors))
}

// RemoveAuthors removes the authors array, returning the removed value, if any.
func (f feedWrite) RemoveAuthors() (any, bool) {
	return removeKey(f.value, "authors")
}

// SetLanguage sets the language, returning the previous value, if any.
func (f feedWrite) SetLanguage(v string) (any, bool) {
	return setKey(f.value, "language", v)
}

// RemoveLanguage removes the language, returning the removed value, if any.
func (f feedWrite) RemoveLanguage() (any, bool) {
	return removeKey(f.value, "language")
}

// SetExpired sets the expired flag, returning the previous value, if any.
func (f feedWrite) SetExpired(v bool) (any, bool) {
	return setKey(f.value, "expired", v)
}

// RemoveExpired removes the expired flag, returning the removed value, if any.
func (f feedWrite) RemoveExpired() (any, bool) {
	return removeKey(f.value, "expired")
}

// HubsMut returns read-write views of the hubs array.
func (f feedWrite) HubsMut() ([]HubMut, bool, error) {
	return getWrappedArray(f.value, "hubs", newHubMut)
}

// SetHubs sets the hubs array, returning the previous value, if any.
func (f feedWrite) SetHubs(hubs ...*Hub) (any, bool) {
	return setKey(f.value, "hubs", objectsOf(hubs))
}

// RemoveHubs removes the hubs array, returning the removed value, if any.
func (f feedWrite) RemoveHubs() (any, bool) {
	return removeKey(f.value, "hubs")
}

// ItemsMut returns read-write views of the items array.
func (f feedWrite) ItemsMut() ([]ItemMut, bool, error) {
	return getWrappedArray(f.value, "items", newItemMut)
}

// SetItems sets the items array, returning the previous value, if any.
func (f feedWrite) SetItems(items ...*Item) (any, bool) {
	return setKey(f.value, "items", objectsOf(items))
}

// RemoveItems removes the items array, returning the removed value, if any.
func (f feedWrite) RemoveItems() (any, bool) {
	return removeKey(f.value, "items")
}

// NewFeed returns a Feed backed by an empty JSON object.
func NewFeed() *Feed {
	return wrapFeed(map[string]any{})
}

// FeedFromMap wraps an existing JSON object without copying it; the
// caller and the Feed share the map.
func FeedFromMap(m map[string]any) *Feed {
	return wrapFeed(m)
}

func wrapFeed(m map[string]any) *Feed {
	return &Feed{feedWrite{feedRead{value: m}}}
}

// Clone returns a Feed backed by a deep copy of the object.
func (f *Feed) Clone() *Feed {
	return wrapFeed(deepCopyMap(f.value))
}

// Ref returns a read-only view sharing the backing object.
func (f *Feed) Ref() FeedRef {
	return FeedRef{f.feedRead}
}

// Mut returns a read-write view sharing the backing object.
func (f *Feed) Mut() FeedMut {
	return FeedMut{f.feedWrite}
}

func (f *Feed) UnmarshalJSON(b []byte) error {
	m, err := unmarshalObject(b)
	if err != nil {
		return err
	}
	f.value = m
	return nil
}

// FeedRef is a read-only view over a JSON object owned elsewhere.
type FeedRef struct {
	feedRead
}

// FeedRefFromMap wraps an existing JSON object in a read-only view.
func FeedRefFromMap(m map[string]any) FeedRef {
	return FeedRef{feedRead{value: m}}
}

// ToFeed deep-copies the viewed object into an owning Feed.
func (f FeedRef) ToFeed() *Feed {
	return wrapFeed(deepCopyMap(f.value))
}

// FeedMut is a read-write view over a JSON object owned elsewhere.
type FeedMut struct {
	feedWrite
}

// FeedMutFromMap wraps an existing JSON object in a read-write view.
func FeedMutFromMap(m map[string]any) FeedMut {
	return FeedMut{feedWrite{feedRead{value: m}}}
}

// ToFeed deep-copies the viewed object into an owning Feed.
func (f FeedMut) ToFeed() *Feed {
	return wrapFeed(deepCopyMap(f.value))
}
