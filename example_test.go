package jsonfeed_test

import (
	"fmt"
	"log"

	"github.com/jsonfeed/jsonfeed-go"
	"github.com/jsonfeed/jsonfeed-go/canonicaljson"
)

func ExampleFromString() {
	feed, err := jsonfeed.FromString(`{
		"version": "https://jsonfeed.org/version/1.1",
		"title": "My Example Feed",
		"items": [
			{"id": "1", "content_text": "Hello, world"}
		]
	}`)
	if err != nil {
		log.Fatal(err)
	}

	title, _, _ := feed.Title()
	fmt.Println(title)

	items, _, _ := feed.Items()
	id, _, _ := items[0].ID()
	fmt.Println(id)
	// Output:
	// My Example Feed
	// 1
}

func ExampleFeed_Validate() {
	feed, err := jsonfeed.FromString(`{
		"version": "https://jsonfeed.org/version/1.1",
		"title": "My Example Feed",
		"items": [
			{"id": "1"}
		]
	}`)
	if err != nil {
		log.Fatal(err)
	}

	if err := feed.Validate(jsonfeed.Version1_1); err != nil {
		fmt.Println(err)
	}
	// Output:
	// invalid feed: items[0]: must have content_html or content_text
}

func ExampleNewFeed() {
	item := jsonfeed.NewItem()
	item.SetID("1")
	item.SetContentText("Hello, world")

	feed := jsonfeed.NewFeed()
	feed.SetVersion(jsonfeed.Version1_1)
	feed.SetTitle("My Example Feed")
	feed.SetItems(item)

	fmt.Println(feed.IsValid(jsonfeed.Version1_1))
	// Output:
	// true
}

func Example_canonicalBytes() {
	feed := jsonfeed.NewFeed()
	feed.SetVersion(jsonfeed.Version1)
	feed.SetTitle("Stable Bytes")
	feed.SetItems()

	out, err := canonicaljson.Marshal(feed.AsMap())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
	// Output:
	// {"items":[],"title":"Stable Bytes","version":"https://jsonfeed.org/version/1"}
}
