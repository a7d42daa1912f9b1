package services

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"fashionchat/internal/models"
)

// Fashion knowledge base. Responses are canned texts grouped by topic;
// retrieval picks the closest one to the user's message.
var (
	trendTexts = []string{
		"Oversized blazers are in style this season.",
		"Pastel colors are trending for spring.",
		"Sustainable fashion is becoming increasingly popular.",
		"Vintage and retro styles are making a comeback.",
		"Minimalist and capsule wardrobes are trending for their sustainability.",
	}

	styleTexts = map[string]string{
		"casual":     "Casual style is all about comfort and simplicity. Think jeans, t-shirts, and sneakers. It's perfect for everyday wear.",
		"formal":     "Formal wear typically includes suits, dress shirts, formal shoes, and accessories like ties and cufflinks. For women, this could mean elegant dresses or pantsuits.",
		"business":   "Business attire is professional and polished. For men, this means dress shirts, slacks, and blazers. For women, it could be blouses, pencil skirts, or tailored pants.",
		"bohemian":   "Bohemian style features flowy fabrics, earthy tones, and eclectic patterns. Think maxi dresses, fringed vests, and layered jewelry.",
		"athleisure": "Athleisure combines athletic wear with casual clothing. It includes items like yoga pants, hoodies, and sneakers that are both comfortable and stylish.",
	}

	colorTexts = []string{
		"Neutral colors like beige, white, and gray are versatile and timeless.",
		"Bold colors can make a statement and add personality to your outfit.",
		"Earthy tones like olive green, terracotta, and mustard are great for a natural look.",
		"Jewel tones such as emerald, sapphire, and amethyst add richness to any outfit.",
	}

	accessoryTexts = []string{
		"Statement jewelry can elevate any outfit.",
		"A good quality watch is a timeless accessory.",
		"Scarves can add color and texture to your look.",
		"A classic leather belt can tie an outfit together.",
		"Sunglasses are both stylish and practical for sunny days.",
	}

	outfitTexts = []string{
		"For a casual day out, try pairing light wash jeans with a white t-shirt and sneakers.",
		"A little black dress is perfect for any formal occasion and can be dressed up or down with accessories.",
		"For a business casual look, pair tailored trousers with a blouse and a blazer.",
		"Layering is key for transitional weather - try a denim jacket over a summer dress.",
	}

	fallbackTexts = []string{
		"I'm a fashion assistant. I can help you with fashion trends, styles, colors, and accessories.",
		"I'm not sure I understand. Could you rephrase your question about fashion?",
		"I'm here to help with fashion advice. Could you tell me more about what you're looking for?",
		"I specialize in fashion advice. You can ask me about trends, styles, colors, or outfit ideas.",
	}
)

// matchThreshold is the minimum similarity for a knowledge text to be
// used as-is; trendsThreshold is the stricter bar for single trend
// answers (below it the whole trends list is returned).
const (
	matchThreshold  = 0.3
	trendsThreshold = 0.5

	cacheTTL       = time.Hour
	cacheKeyPrefix = "chat:response:"
)

var knowledgeCategories = map[string][]string{
	"trends":      trendTexts,
	"colors":      colorTexts,
	"accessories": accessoryTexts,
	"outfits":     outfitTexts,
}

// KnowledgeService generates chat replies from the fashion knowledge
// base. An optional Redis client caches replies per normalized message.
type KnowledgeService struct {
	redis *redis.Client
}

func NewKnowledgeService(redisClient *redis.Client) *KnowledgeService {
	return &KnowledgeService{redis: redisClient}
}

// Respond produces a reply for the given message. The conversation
// history is accepted for interface compatibility but replies are
// derived from the message alone.
func (s *KnowledgeService) Respond(ctx context.Context, message string, _ []models.ChatMessage) (string, map[string]interface{}, error) {
	metadata := map[string]interface{}{"model": "keyword-matcher"}

	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "I didn't receive any message. Could you please ask me something about fashion?", metadata, nil
	}

	cacheKey := cacheKeyPrefix + strings.ToLower(trimmed)
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		metadata["cached"] = true
		return cached, metadata, nil
	}

	reply := s.generate(trimmed)

	s.cacheSet(ctx, cacheKey, reply)
	return reply, metadata, nil
}

func (s *KnowledgeService) generate(message string) string {
	messageLower := strings.ToLower(message)
	words := tokenize(messageLower)

	if containsAny(words, "hello", "hi", "hey") {
		return "Hello! I'm your fashion assistant. How can I help you with fashion today?"
	}

	category := detectCategory(messageLower)

	best, score := bestMatch(messageLower, category)
	if best != "" && score > matchThreshold {
		if category == "trends" && score < trendsThreshold {
			// Single trend matches are unreliable, so answer with the full list.
			return "Here are some current fashion trends: " + strings.Join(trendTexts, " ")
		}
		return best
	}

	if category == "" {
		for style, desc := range styleTexts {
			if strings.Contains(messageLower, style) {
				return desc
			}
		}
	}

	return closestFallback(messageLower)
}

func detectCategory(messageLower string) string {
	switch {
	case containsAnySubstring(messageLower, "trend", "trending"):
		return "trends"
	case containsAnySubstring(messageLower, "color", "colors", "colour"):
		return "colors"
	case containsAnySubstring(messageLower, "accessory", "accessories"):
		return "accessories"
	case containsAnySubstring(messageLower, "outfit", "wear", "dress"):
		return "outfits"
	}
	return ""
}

// bestMatch scans the knowledge base (one category, or all when empty)
// and returns the text closest to the message.
func bestMatch(messageLower, category string) (string, float64) {
	categories := knowledgeCategories
	if category != "" {
		texts, ok := knowledgeCategories[category]
		if !ok {
			return "", -1
		}
		categories = map[string][]string{category: texts}
	}

	msgVec := termFreq(tokenize(messageLower))

	bestScore := -1.0
	bestText := ""
	for _, texts := range categories {
		for _, text := range texts {
			score := cosine(msgVec, termFreq(tokenize(strings.ToLower(text))))
			if score > bestScore {
				bestScore = score
				bestText = text
			}
		}
	}

	// Style descriptions take part in the unscoped search as well.
	if category == "" {
		for _, desc := range styleTexts {
			score := cosine(msgVec, termFreq(tokenize(strings.ToLower(desc))))
			if score > bestScore {
				bestScore = score
				bestText = desc
			}
		}
	}

	return bestText, bestScore
}

func closestFallback(messageLower string) string {
	msgVec := termFreq(tokenize(messageLower))

	best := fallbackTexts[0]
	bestScore := -1.0
	for _, fb := range fallbackTexts {
		score := cosine(msgVec, termFreq(tokenize(strings.ToLower(fb))))
		if score > bestScore {
			bestScore = score
			best = fb
		}
	}
	return best
}

func (s *KnowledgeService) cacheGet(ctx context.Context, key string) (string, bool) {
	if s.redis == nil {
		return "", false
	}
	val, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis get failed: %v", err)
		}
		return "", false
	}
	return val, true
}

func (s *KnowledgeService) cacheSet(ctx context.Context, key, reply string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, key, reply, cacheTTL).Err(); err != nil {
		log.Printf("Redis set failed: %v", err)
	}
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
	})
}

func termFreq(tokens []string) map[string]float64 {
	freq := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		freq[tok]++
	}
	return freq
}

func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for term, av := range a {
		normA += av * av
		if bv, ok := b[term]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		normB += bv * bv
	}

	if dot == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func containsAny(words []string, targets ...string) bool {
	for _, w := range words {
		for _, t := range targets {
			if w == t {
				return true
			}
		}
	}
	return false
}

func containsAnySubstring(s string, targets ...string) bool {
	for _, t := range targets {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
