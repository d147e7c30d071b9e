package chat

import (
	"strings"
	"testing"
)

func deterministic() *Service {
	return &Service{pick: func(int) int { return 0 }}
}

func TestReplyMatchesTopics(t *testing.T) {
	svc := deterministic()
	cases := map[string]string{
		"Hello!":                          "Hello! How can I help you today?",
		"when do you CLOSE":               "We're open 24/7 online! Orders ship Monday-Friday 9AM-5PM.",
		"how long is delivery":            "Standard shipping",
		"can I get a refund":              "We accept returns within 30 days",
		"do you take credit cards":        "We accept Visa",
		"not sure what size fits":         "size guide",
		"what is the meaning of clothes?": "support@fashionstore.com",
	}
	for msg, want := range cases {
		got := svc.Reply(msg)
		if !strings.Contains(got, want) {
			t.Fatalf("message %q: expected reply containing %q, got %q", msg, want, got)
		}
	}
}

func TestReplyPicksWithinTopic(t *testing.T) {
	svc := &Service{pick: func(n int) int { return n - 1 }}
	got := svc.Reply("hi")
	if got != "Welcome to our store! Need assistance?" {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestSuggestionsStable(t *testing.T) {
	if len(Suggestions) != 4 || Suggestions[0] != "Shipping policy" {
		t.Fatalf("unexpected suggestions: %v", Suggestions)
	}
}
