package jsonfeed

import (
	"errors"
	"strings"
	"testing"
)

func validFeedMap() map[string]any {
	return map[string]any{
		"version": "https://jsonfeed.org/version/1.1",
		"title":   "My Feed",
		"items": []any{
			map[string]any{"id": "1", "content_text": "Hello"},
		},
	}
}

func TestValidate_ValidFeed(t *testing.T) {
	feed := FeedFromMap(validFeedMap())

	if err := feed.Validate(Version1_1); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if !feed.IsValid(Version1_1) {
		t.Fatalf("IsValid disagrees with Validate")
	}
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		target Version
		want   string
	}{
		{
			name:   "missing version",
			mutate: func(m map[string]any) { delete(m, "version") },
			target: Version1_1,
			want:   "version: required",
		},
		{
			name:   "numeric version",
			mutate: func(m map[string]any) { m["version"] = 1.1 },
			target: Version1_1,
			want:   "version: must be a JSON string",
		},
		{
			name:   "version 1.1 does not satisfy target 1",
			mutate: func(m map[string]any) {},
			target: Version1,
			want:   "does not satisfy target version",
		},
		{
			name:   "missing title",
			mutate: func(m map[string]any) { delete(m, "title") },
			target: Version1_1,
			want:   "title: required",
		},
		{
			name:   "missing items",
			mutate: func(m map[string]any) { delete(m, "items") },
			target: Version1_1,
			want:   "items: required",
		},
		{
			name:   "items not an array",
			mutate: func(m map[string]any) { m["items"] = map[string]any{} },
			target: Version1_1,
			want:   "items: must be a JSON array",
		},
		{
			name: "item without id",
			mutate: func(m map[string]any) {
				m["items"] = []any{map[string]any{"content_text": "x"}}
			},
			target: Version1_1,
			want:   "items[0].id: required",
		},
		{
			name: "item without content",
			mutate: func(m map[string]any) {
				m["items"] = []any{map[string]any{"id": "1"}}
			},
			target: Version1_1,
			want:   "items[0]: must have content_html or content_text",
		},
		{
			name: "item element not an object",
			mutate: func(m map[string]any) {
				m["items"] = []any{"not an item"}
			},
			target: Version1_1,
			want:   "items[0]: must be a JSON object",
		},
		{
			name: "attachment without mime_type",
			mutate: func(m map[string]any) {
				m["items"] = []any{map[string]any{
					"id":           "1",
					"content_text": "x",
					"attachments": []any{
						map[string]any{"url": "https://example.com/a.mp3"},
					},
				}}
			},
			target: Version1_1,
			want:   "items[0].attachments[0].mime_type: required",
		},
		{
			name: "attachment with negative size",
			mutate: func(m map[string]any) {
				m["items"] = []any{map[string]any{
					"id":           "1",
					"content_text": "x",
					"attachments": []any{
						map[string]any{
							"url":           "https://example.com/a.mp3",
							"mime_type":     "audio/mpeg",
							"size_in_bytes": -5.0,
						},
					},
				}}
			},
			target: Version1_1,
			want:   "size_in_bytes: must be a non-negative JSON integer",
		},
		{
			name: "hub without type",
			mutate: func(m map[string]any) {
				m["hubs"] = []any{map[string]any{"url": "https://example.com/hub"}}
			},
			target: Version1_1,
			want:   "hubs[0].type: required",
		},
		{
			name:   "expired not a boolean",
			mutate: func(m map[string]any) { m["expired"] = "yes" },
			target: Version1_1,
			want:   "expired: must be a JSON boolean",
		},
		{
			name: "tag not a string",
			mutate: func(m map[string]any) {
				m["items"] = []any{map[string]any{
					"id":           "1",
					"content_text": "x",
					"tags":         []any{"ok", 2.0},
				}}
			},
			target: Version1_1,
			want:   "tags[1]: must be a JSON string",
		},
		{
			name:   "author not an object",
			mutate: func(m map[string]any) { m["author"] = "Jane" },
			target: Version1_1,
			want:   "author: must be a JSON object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validFeedMap()
			tt.mutate(m)
			feed := FeedFromMap(m)

			err := feed.Validate(tt.target)
			if err == nil {
				t.Fatalf("expected violation containing %q, got nil", tt.want)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, err.Error())
			}
			if feed.IsValid(tt.target) {
				t.Fatalf("IsValid disagrees with Validate")
			}
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	feed := FeedFromMap(map[string]any{
		"version": "https://jsonfeed.org/version/1.1",
		"items": []any{
			map[string]any{},
			map[string]any{"id": "1", "content_text": "x"},
			map[string]any{"id": 3.0, "content_html": "<p>x</p>"},
		},
	})

	err := feed.Validate(Version1_1)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}

	want := []string{
		"title: required",
		"items[0].id: required",
		"items[0]: must have content_html or content_text",
		"items[2].id: must be a JSON string",
	}
	if len(verr.Problems) != len(want) {
		t.Fatalf("expected %d problems, got %v", len(want), verr.Problems)
	}
	for i, w := range want {
		if verr.Problems[i] != w {
			t.Fatalf("problem %d: expected %q, got %q", i, w, verr.Problems[i])
		}
	}

	// Repeat runs produce the same ordering.
	again := feed.Validate(Version1_1)
	if again.Error() != err.Error() {
		t.Fatalf("non-deterministic report:\n%s\n%s", err, again)
	}
}

func TestValidate_NestedProblemPaths(t *testing.T) {
	feed := FeedFromMap(map[string]any{
		"version": string(Version1_1),
		"title":   "t",
		"hubs":    []any{map[string]any{"url": "https://example.com/hub"}},
		"items": []any{
			map[string]any{
				"id":           "1",
				"content_text": "x",
				"tags":         []any{7.0},
				"attachments": []any{
					map[string]any{"url": "https://example.com/a.mp3"},
				},
			},
		},
	})

	err := feed.Validate(Version1_1)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}

	want := []string{
		"hubs[0].type: required",
		"items[0].tags[0]: must be a JSON string",
		"items[0].attachments[0].mime_type: required",
	}
	if len(verr.Problems) != len(want) {
		t.Fatalf("expected %d problems, got %v", len(want), verr.Problems)
	}
	for i, w := range want {
		if verr.Problems[i] != w {
			t.Fatalf("problem %d: expected %q, got %q", i, w, verr.Problems[i])
		}
	}
}

func TestValidate_VersionCompatibility(t *testing.T) {
	m := validFeedMap()
	m["version"] = string(Version1)
	m["items"] = []any{map[string]any{"id": "1", "content_text": "x"}}
	feed := FeedFromMap(m)

	// A 1.0 document satisfies both targets.
	if err := feed.Validate(Version1); err != nil {
		t.Fatalf("1.0 against 1: %v", err)
	}
	if err := feed.Validate(Version1_1); err != nil {
		t.Fatalf("1.0 against 1.1: %v", err)
	}

	if err := feed.Validate(Version("draft")); err == nil {
		t.Fatalf("unknown target must fail")
	} else if !strings.Contains(err.Error(), "does not satisfy") {
		t.Fatalf("unexpected report: %v", err)
	}
}

func TestValidate_RejectUnknownKeys(t *testing.T) {
	m := validFeedMap()
	m["_ext"] = map[string]any{"k": "v"}
	m["zebra"] = true
	m["apple"] = 1.0
	feed := FeedFromMap(m)

	// Permissive by default.
	if err := feed.Validate(Version1_1); err != nil {
		t.Fatalf("default mode: %v", err)
	}

	err := feed.Validate(Version1_1, WithRejectUnknownKeys())
	if err == nil {
		t.Fatalf("strict mode: expected violation")
	}
	if !strings.Contains(err.Error(), "unrecognized keys: apple, zebra") {
		t.Fatalf("expected sorted unrecognized keys, got %v", err)
	}
}

func TestValidate_AuthorsRecognizedOnlyFor1_1(t *testing.T) {
	m := map[string]any{
		"version": string(Version1),
		"title":   "t",
		"authors": []any{map[string]any{"name": "Jane"}},
		"items":   []any{map[string]any{"id": "1", "content_text": "x"}},
	}
	feed := FeedFromMap(m)

	if err := feed.Validate(Version1, WithRejectUnknownKeys()); err == nil {
		t.Fatalf("authors is not a 1.0 key under strict mode")
	}
	if err := feed.Validate(Version1_1, WithRejectUnknownKeys()); err != nil {
		t.Fatalf("authors is a 1.1 key: %v", err)
	}
}

func TestValidate_StandaloneEntities(t *testing.T) {
	item := ItemFromMap(map[string]any{"id": "1", "content_text": "x"})
	if err := item.Validate(Version1_1); err != nil {
		t.Fatalf("item: %v", err)
	}

	hub := HubFromMap(map[string]any{"type": "WebSub"})
	if err := hub.Validate(Version1_1); err == nil {
		t.Fatalf("hub without url must fail")
	}

	att := AttachmentFromMap(map[string]any{"url": "u", "mime_type": "audio/mpeg"})
	if !att.IsValid(Version1) {
		t.Fatalf("attachment should be valid")
	}

	author := AuthorFromMap(map[string]any{})
	err := author.Validate(Version1_1)
	if err == nil || !strings.Contains(err.Error(), "must have name, url, or avatar") {
		t.Fatalf("empty author: %v", err)
	}

	if err := item.Validate(Version("bogus")); err == nil {
		t.Fatalf("unknown target must fail for standalone entities")
	} else if !strings.Contains(err.Error(), "unsupported target version") {
		t.Fatalf("unexpected report: %v", err)
	}
}

func TestValidate_NeverMutates(t *testing.T) {
	m := validFeedMap()
	m["zebra"] = true
	feed := FeedFromMap(m)
	before := feed.Clone()

	feed.Validate(Version1_1, WithRejectUnknownKeys())
	feed.IsValid(Version1)

	if !Equal(feed, before) {
		t.Fatalf("validation mutated the document")
	}
}
