package services

import (
	"context"
	"strings"
	"testing"
)

func TestRespondGreeting(t *testing.T) {
	svc := NewKnowledgeService(nil)

	reply, metadata, err := svc.Respond(context.Background(), "Hi there!", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	if !strings.HasPrefix(reply, "Hello! I'm your fashion assistant.") {
		t.Errorf("Expected greeting reply, got %q", reply)
	}
	if metadata["model"] != "keyword-matcher" {
		t.Errorf("Expected model metadata 'keyword-matcher', got %v", metadata["model"])
	}
}

func TestRespondEmptyMessage(t *testing.T) {
	svc := NewKnowledgeService(nil)

	for _, message := range []string{"", "   ", "\n\t"} {
		reply, _, err := svc.Respond(context.Background(), message, nil)
		if err != nil {
			t.Fatalf("Respond(%q) error = %v", message, err)
		}
		if !strings.HasPrefix(reply, "I didn't receive any message.") {
			t.Errorf("Respond(%q) = %q, expected the empty-message reply", message, reply)
		}
	}
}

func TestRespondTrendsListsAllOnWeakMatch(t *testing.T) {
	svc := NewKnowledgeService(nil)

	reply, _, err := svc.Respond(context.Background(), "What's trending this season?", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	if !strings.HasPrefix(reply, "Here are some current fashion trends:") {
		t.Errorf("Expected joined trends list, got %q", reply)
	}
	for _, trend := range trendTexts {
		if !strings.Contains(reply, trend) {
			t.Errorf("Expected trends reply to contain %q", trend)
		}
	}
}

func TestRespondStrongCategoryMatch(t *testing.T) {
	svc := NewKnowledgeService(nil)

	reply, _, err := svc.Respond(context.Background(), "Are neutral colors versatile and timeless?", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	if reply != colorTexts[0] {
		t.Errorf("Expected %q, got %q", colorTexts[0], reply)
	}
}

func TestRespondStyleLookup(t *testing.T) {
	svc := NewKnowledgeService(nil)

	reply, _, err := svc.Respond(context.Background(), "Tell me about bohemian looks", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	if reply != styleTexts["bohemian"] {
		t.Errorf("Expected bohemian style description, got %q", reply)
	}
}

func TestRespondFallback(t *testing.T) {
	svc := NewKnowledgeService(nil)

	reply, _, err := svc.Respond(context.Background(), "How do I repair a bicycle chain?", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	found := false
	for _, fb := range fallbackTexts {
		if reply == fb {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected one of the fallback replies, got %q", reply)
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		message  string
		expected string
	}{
		{"what are the latest trends", "trends"},
		{"is this colour in style", "colors"},
		{"which accessories go with a watch", "accessories"},
		{"what should i wear tonight", "outfits"},
		{"good evening", ""},
	}

	for _, tc := range tests {
		t.Run(tc.message, func(t *testing.T) {
			if got := detectCategory(tc.message); got != tc.expected {
				t.Errorf("detectCategory(%q) = %q, want %q", tc.message, got, tc.expected)
			}
		})
	}
}

func TestCosine(t *testing.T) {
	a := termFreq([]string{"navy", "blue", "jacket"})

	if got := cosine(a, a); got < 0.999 {
		t.Errorf("Expected identical vectors to score ~1, got %f", got)
	}

	b := termFreq([]string{"engine", "oil"})
	if got := cosine(a, b); got != 0 {
		t.Errorf("Expected disjoint vectors to score 0, got %f", got)
	}

	if got := cosine(a, termFreq(nil)); got != 0 {
		t.Errorf("Expected empty vector to score 0, got %f", got)
	}
}
