package chat

import (
	"math/rand"
	"strings"
)

// Service answers the storefront support widget with canned, keyword-matched
// replies.
type Service struct {
	pick func(n int) int
}

func New() *Service {
	return &Service{pick: rand.Intn}
}

type topic struct {
	keywords []string
	replies  []string
}

// Topics are checked in order; first keyword hit wins.
var topics = []topic{
	{
		keywords: []string{"hello", "hi", "hey"},
		replies: []string{
			"Hello! How can I help you today?",
			"Hi there! Looking for something special?",
			"Welcome to our store! Need assistance?",
		},
	},
	{
		keywords: []string{"hour", "open", "close"},
		replies:  []string{"We're open 24/7 online! Orders ship Monday-Friday 9AM-5PM."},
	},
	{
		keywords: []string{"ship", "delivery", "shipping"},
		replies:  []string{"Standard shipping: 3-5 business days, $4.99\nExpress shipping: 1-2 business days, $9.99"},
	},
	{
		keywords: []string{"return", "refund", "exchange"},
		replies:  []string{"We accept returns within 30 days of purchase. Items must be unworn with tags attached."},
	},
	{
		keywords: []string{"pay", "payment", "card", "credit"},
		replies:  []string{"We accept Visa, MasterCard, American Express, PayPal, and Apple Pay."},
	},
	{
		keywords: []string{"size", "fit", "measurement"},
		replies:  []string{"Check our size guide on each product page. If unsure, order multiple sizes and return what doesn't fit!"},
	},
}

var fallbackReplies = []string{
	"I'm not sure about that. Can you contact customer service at support@fashionstore.com?",
}

// Suggestions are the quick-reply chips shown under every answer.
var Suggestions = []string{
	"Shipping policy",
	"Return policy",
	"Size guide",
	"Payment methods",
}

// Reply answers a user message with the first matching topic's canned reply.
func (s *Service) Reply(message string) string {
	message = strings.ToLower(message)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(message, kw) {
				return t.replies[s.pick(len(t.replies))]
			}
		}
	}
	return fallbackReplies[s.pick(len(fallbackReplies))]
}
