package jsonfeed

import (
	"fmt"
	"sort"
	"strings"
)

type validateOptions struct {
	rejectUnknownKeys bool
}

// ValidateOption configures Validate and IsValid.
type ValidateOption func(*validateOptions)

// WithRejectUnknownKeys treats keys outside an entity's recognized set as
// violations, except "_"-prefixed extension keys, which are always
// allowed. The default is forward-compatible: unrecognized keys are
// ignored entirely. Note that "authors" and "language" are only
// recognized when validating against version 1.1 or later.
func WithRejectUnknownKeys() ValidateOption {
	return func(o *validateOptions) { o.rejectUnknownKeys = true }
}

func applyValidateOptions(opts []ValidateOption) validateOptions {
	var o validateOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ValidationError is a deterministic, multi-problem validation error.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Problems) == 0 {
		return "invalid feed"
	}
	return "invalid feed: " + strings.Join(e.Problems, "; ")
}

// checker accumulates violations during a document walk. In failFast mode
// it records at most one violation; walkers consult stopped to bail out.
type checker struct {
	problems []string
	failFast bool
	stopped  bool
}

func (c *checker) add(path, msg string) {
	if c.stopped {
		return
	}
	if path == "" {
		c.problems = append(c.problems, msg)
	} else {
		c.problems = append(c.problems, path+": "+msg)
	}
	if c.failFast {
		c.stopped = true
	}
}

func (c *checker) err() error {
	if len(c.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: c.problems}
}

// Validate checks the document against a target format version and reports
// every violation found, nil when the document is valid. The returned
// error is always a *ValidationError with deterministic, path-prefixed
// problems. Type mismatches on recognized keys (e.g. a numeric "version")
// are reported as violations, never as accessor errors; the
// classification is identical to IsValid's.
//
// Validate never mutates the document and, by default, never looks at
// keys it does not recognize.
func (f feedRead) Validate(target Version, opts ...ValidateOption) error {
	o := applyValidateOptions(opts)
	c := &checker{}
	c.checkFeed(f.value, "", target, o)
	return c.err()
}

// IsValid reports whether the document is valid for the target format
// version. It stops at the first violation; the verdict always matches
// Validate returning nil.
func (f feedRead) IsValid(target Version, opts ...ValidateOption) bool {
	o := applyValidateOptions(opts)
	c := &checker{failFast: true}
	c.checkFeed(f.value, "", target, o)
	return len(c.problems) == 0
}

// Validate checks a standalone item against a target format version.
func (i itemRead) Validate(target Version, opts ...ValidateOption) error {
	o := applyValidateOptions(opts)
	c := &checker{}
	c.checkTarget(target)
	c.checkItem(i.value, "", target, o)
	return c.err()
}

// IsValid reports whether a standalone item is valid for the target format
// version.
func (i itemRead) IsValid(target Version, opts ...ValidateOption) bool {
	o := applyValidateOptions(opts)
	c := &checker{failFast: true}
	c.checkTarget(target)
	c.checkItem(i.value, "", target, o)
	return len(c.problems) == 0
}

// Validate checks a standalone attachment against a target format version.
func (a attachmentRead) Validate(target Version, opts ...ValidateOption) error {
	o := applyValidateOptions(opts)
	c := &checker{}
	c.checkTarget(target)
	c.checkAttachment(a.value, "", o)
	return c.err()
}

// IsValid reports whether a standalone attachment is valid for the target
// version of the format.
func (a attachmentRead) IsValid(target Version, opts ...ValidateOption) bool {
	o := applyValidateOptions(opts)
	c := &checker{failFast: true}
	c.checkTarget(target)
	c.checkAttachment(a.value, "", o)
	return len(c.problems) == 0
}

// Validate checks a standalone hub against a target format version.
func (h hubRead) Validate(target Version, opts ...ValidateOption) error {
	o := applyValidateOptions(opts)
	c := &checker{}
	c.checkTarget(target)
	c.checkHub(h.value, "", o)
	return c.err()
}

// IsValid reports whether a standalone hub is valid for the target format
// version.
func (h hubRead) IsValid(target Version, opts ...ValidateOption) bool {
	o := applyValidateOptions(opts)
	c := &checker{failFast: true}
	c.checkTarget(target)
	c.checkHub(h.value, "", o)
	return len(c.problems) == 0
}

// Validate checks a standalone author against a target format version.
// Unlike the feed-level walk, which only requires author entries to be
// JSON objects, the standalone check requires at least one of "name",
// "url", or "avatar" to be present as a string.
func (a authorRead) Validate(target Version, opts ...ValidateOption) error {
	o := applyValidateOptions(opts)
	c := &checker{}
	c.checkTarget(target)
	c.checkAuthor(a.value, "", o)
	return c.err()
}

// IsValid reports whether a standalone author is valid for the target
// version of the format.
func (a authorRead) IsValid(target Version, opts ...ValidateOption) bool {
	o := applyValidateOptions(opts)
	c := &checker{failFast: true}
	c.checkTarget(target)
	c.checkAuthor(a.value, "", o)
	return len(c.problems) == 0
}

func (c *checker) checkTarget(target Version) {
	if !target.Known() {
		c.add("", fmt.Sprintf("unsupported target version %q", string(target)))
	}
}

func (c *checker) checkFeed(m map[string]any, path string, target Version, o validateOptions) {
	if c.stopped {
		return
	}

	v, has := m["version"]
	switch {
	case !has:
		c.add(joinPath(path, "version"), "required")
	default:
		s, ok := v.(string)
		if !ok {
			c.add(joinPath(path, "version"), "must be a JSON string")
		} else if !Version(s).Satisfies(target) {
			c.add(joinPath(path, "version"), fmt.Sprintf("%q does not satisfy target version %q", s, string(target)))
		}
	}

	c.requireString(m, path, "title")

	c.optionalString(m, path, "home_page_url")
	c.optionalString(m, path, "feed_url")
	c.optionalString(m, path, "description")
	c.optionalString(m, path, "user_comment")
	c.optionalString(m, path, "next_url")
	c.optionalString(m, path, "icon")
	c.optionalString(m, path, "favicon")
	c.optionalString(m, path, "language")
	c.optionalBool(m, path, "expired")
	c.optionalObject(m, path, "author")
	c.optionalObjectArray(m, path, "authors", nil)

	c.optionalObjectArray(m, path, "hubs", func(hub map[string]any, hubPath string) {
		c.checkHub(hub, hubPath, o)
	})

	// An absent "items" is a violation; an empty array is fine.
	if _, has := m["items"]; !has {
		c.add(joinPath(path, "items"), "required")
	} else {
		c.optionalObjectArray(m, path, "items", func(item map[string]any, itemPath string) {
			c.checkItem(item, itemPath, target, o)
		})
	}

	if o.rejectUnknownKeys {
		c.checkKeys(m, path, recognizedFeedKeys(target))
	}
}

func (c *checker) checkItem(m map[string]any, path string, target Version, o validateOptions) {
	if c.stopped {
		return
	}

	c.requireString(m, path, "id")

	c.optionalString(m, path, "url")
	c.optionalString(m, path, "external_url")
	c.optionalString(m, path, "title")
	c.optionalString(m, path, "summary")
	c.optionalString(m, path, "image")
	c.optionalString(m, path, "banner_image")
	c.optionalString(m, path, "date_published")
	c.optionalString(m, path, "date_modified")
	c.optionalString(m, path, "language")
	c.optionalStringArray(m, path, "tags")
	c.optionalObject(m, path, "author")
	c.optionalObjectArray(m, path, "authors", nil)

	html := c.optionalString(m, path, "content_html")
	text := c.optionalString(m, path, "content_text")
	if !html && !text {
		c.add(path, "must have content_html or content_text")
	}

	c.optionalObjectArray(m, path, "attachments", func(att map[string]any, attPath string) {
		c.checkAttachment(att, attPath, o)
	})

	if o.rejectUnknownKeys {
		c.checkKeys(m, path, recognizedItemKeys(target))
	}
}

func (c *checker) checkAttachment(m map[string]any, path string, o validateOptions) {
	if c.stopped {
		return
	}

	c.requireString(m, path, "url")
	c.requireString(m, path, "mime_type")
	c.optionalString(m, path, "title")
	c.optionalUint(m, path, "size_in_bytes")
	c.optionalUint(m, path, "duration_in_seconds")

	if o.rejectUnknownKeys {
		c.checkKeys(m, path, attachmentKeys)
	}
}

func (c *checker) checkHub(m map[string]any, path string, o validateOptions) {
	if c.stopped {
		return
	}

	c.requireString(m, path, "type")
	c.requireString(m, path, "url")

	if o.rejectUnknownKeys {
		c.checkKeys(m, path, hubKeys)
	}
}

func (c *checker) checkAuthor(m map[string]any, path string, o validateOptions) {
	if c.stopped {
		return
	}

	name := c.optionalString(m, path, "name")
	url := c.optionalString(m, path, "url")
	avatar := c.optionalString(m, path, "avatar")
	if !name && !url && !avatar {
		c.add(path, "must have name, url, or avatar")
	}

	if o.rejectUnknownKeys {
		c.checkKeys(m, path, authorKeys)
	}
}

// joinPath appends a key (or an indexed key like "items[0]") to an
// entity path with a "." separator, so nested problems read
// "items[0].attachments[0].mime_type: required".
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// requireString records a violation unless key is present as a string.
func (c *checker) requireString(m map[string]any, path, key string) {
	v, has := m[key]
	if !has {
		c.add(joinPath(path, key), "required")
		return
	}
	if _, ok := v.(string); !ok {
		c.add(joinPath(path, key), "must be a JSON string")
	}
}

// optionalString records a violation when key is present with a
// non-string value. It reports whether key is present as a string.
func (c *checker) optionalString(m map[string]any, path, key string) bool {
	v, has := m[key]
	if !has {
		return false
	}
	if _, ok := v.(string); !ok {
		c.add(joinPath(path, key), "must be a JSON string")
		return false
	}
	return true
}

func (c *checker) optionalBool(m map[string]any, path, key string) {
	v, has := m[key]
	if !has {
		return
	}
	if _, ok := v.(bool); !ok {
		c.add(joinPath(path, key), "must be a JSON boolean")
	}
}

func (c *checker) optionalUint(m map[string]any, path, key string) {
	v, has := m[key]
	if !has {
		return
	}
	if _, ok := toUint64(v); !ok {
		c.add(joinPath(path, key), "must be a non-negative JSON integer")
	}
}

func (c *checker) optionalStringArray(m map[string]any, path, key string) {
	v, has := m[key]
	if !has {
		return
	}
	arr, ok := v.([]any)
	if !ok {
		c.add(joinPath(path, key), "must be a JSON array")
		return
	}
	for i, e := range arr {
		if c.stopped {
			return
		}
		if _, ok := e.(string); !ok {
			c.add(joinPath(path, fmt.Sprintf("%s[%d]", key, i)), "must be a JSON string")
		}
	}
}

// optionalObject records a violation when key is present with a
// non-object value. The object's contents are not inspected.
func (c *checker) optionalObject(m map[string]any, path, key string) {
	v, has := m[key]
	if !has {
		return
	}
	if _, ok := v.(map[string]any); !ok {
		c.add(joinPath(path, key), "must be a JSON object")
	}
}

// optionalObjectArray checks that key, if present, is an array of JSON
// objects, and runs each per element when non-nil.
func (c *checker) optionalObjectArray(m map[string]any, path, key string, each func(map[string]any, string)) {
	v, has := m[key]
	if !has {
		return
	}
	arr, ok := v.([]any)
	if !ok {
		c.add(joinPath(path, key), "must be a JSON array")
		return
	}
	for i, e := range arr {
		if c.stopped {
			return
		}
		elemPath := joinPath(path, fmt.Sprintf("%s[%d]", key, i))
		obj, ok := e.(map[string]any)
		if !ok {
			c.add(elemPath, "must be a JSON object")
			continue
		}
		if each != nil {
			each(obj, elemPath)
		}
	}
}

// checkKeys records a violation for every key outside the recognized set,
// except extension keys ("_" prefix), which are always allowed.
func (c *checker) checkKeys(m map[string]any, path string, recognized map[string]struct{}) {
	var bad []string
	for k := range m {
		if strings.HasPrefix(k, "_") {
			continue
		}
		if _, ok := recognized[k]; !ok {
			bad = append(bad, k)
		}
	}
	if len(bad) == 0 {
		return
	}
	sort.Strings(bad)
	c.add(path, "unrecognized keys: "+strings.Join(bad, ", "))
}

// keySet builds a set for constant-time recognized-key checks.
func keySet(keys ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}

var (
	authorKeys     = keySet("name", "url", "avatar")
	hubKeys        = keySet("type", "url")
	attachmentKeys = keySet("url", "mime_type", "title", "size_in_bytes", "duration_in_seconds")

	feedKeysV1 = keySet(
		"version", "title", "home_page_url", "feed_url", "description",
		"user_comment", "next_url", "icon", "favicon", "author",
		"expired", "hubs", "items",
	)
	feedKeysV1_1 = keySet(
		"version", "title", "home_page_url", "feed_url", "description",
		"user_comment", "next_url", "icon", "favicon", "author",
		"authors", "language", "expired", "hubs", "items",
	)

	itemKeysV1 = keySet(
		"id", "url", "external_url", "title", "content_html",
		"content_text", "summary", "image", "banner_image",
		"date_published", "date_modified", "author", "tags", "attachments",
	)
	itemKeysV1_1 = keySet(
		"id", "url", "external_url", "title", "content_html",
		"content_text", "summary", "image", "banner_image",
		"date_published", "date_modified", "author", "authors",
		"language", "tags", "attachments",
	)
)

// "authors" and "language" joined the format in 1.1.
func recognizedFeedKeys(target Version) map[string]struct{} {
	if target == Version1 {
		return feedKeysV1
	}
	return feedKeysV1_1
}

func recognizedItemKeys(target Version) map[string]struct{} {
	if target == Version1 {
		return itemKeysV1
	}
	return itemKeysV1_1
}
