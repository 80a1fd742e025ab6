package jsonfeed

// Version identifies a revision of the JSON Feed format. Its value
// is the canonical URI that a feed carries in its "version" key.
type Version string

const (
	// Version1 is the JSON Feed 1.0 identifier.
	Version1 Version = "https://jsonfeed.org/version/1"
	// Version1_1 is the JSON Feed 1.1 identifier.
	Version1_1 Version = "https://jsonfeed.org/version/1.1"
)

// VersionFromTag maps a short version tag ("1", "1.1") to its canonical
// URI. It reports false for tags this package does not know.
func VersionFromTag(tag string) (Version, bool) {
	switch tag {
	case "1":
		return Version1, true
	case "1.1":
		return Version1_1, true
	}
	return "", false
}

// VersionFromURI wraps a version URI as a Version. Unknown URIs are
// preserved as-is; Known reports whether the result is one this package
// models.
func VersionFromURI(uri string) Version {
	return Version(uri)
}

// Known reports whether v is a format revision this package models.
func (v Version) Known() bool {
	return v == Version1 || v == Version1_1
}

// Tag returns the short tag for a known version ("1", "1.1") and "" for
// an unknown one.
func (v Version) Tag() string {
	switch v {
	case Version1:
		return "1"
	case Version1_1:
		return "1.1"
	}
	return ""
}

func (v Version) String() string {
	return string(v)
}

// Satisfies reports whether a document declaring version v meets the
// requirements of target. The 1.x line is backward compatible: a 1.0
// document satisfies a 1.1 target, but a 1.1 document does not satisfy a
// 1.0 target. Unknown versions satisfy nothing, and nothing satisfies an
// unknown target.
func (v Version) Satisfies(target Version) bool {
	switch v {
	case Version1:
		return target == Version1 || target == Version1_1
	case Version1_1:
		return target == Version1_1
	}
	return false
}
