package docs

import (
	"strings"
	"testing"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("getting-started")
	if err != nil {
		t.Fatalf("GetTopic() error: %v", err)
	}
	if !strings.Contains(content, "whs") {
		t.Errorf("getting-started should mention the whs command")
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Errorf("an unknown topic should be an error")
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error: %v", err)
	}
	want := map[string]bool{"getting-started": true, "inventory": true, "orders": true, "financials": true}
	for _, topic := range topics {
		delete(want, topic)
	}
	if len(want) > 0 {
		t.Errorf("missing topics: %v", want)
	}
}

func TestTitle(t *testing.T) {
	title, err := Title("inventory")
	if err != nil {
		t.Fatalf("Title() error: %v", err)
	}
	if title == "" || title == "inventory" {
		t.Errorf("Title(inventory) = %q, want the document's H1", title)
	}
}
