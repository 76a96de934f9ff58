package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/londonlets/api/internal/infra/integration/llm"
)

const seoTitleMaxLen = 60

const rewriteSystemPrompt = `You are a professional property copywriter. Rewrite property descriptions to be unique, engaging, and SEO-optimized. Keep the same information but use different words and structure. Add relevant details about the area and amenities. Make it compelling for potential renters in London.`

const seoTitleSystemPrompt = `You are an SEO expert for property listings. Generate compelling, SEO-optimized titles for London rental properties. Include key information: location, bedrooms, bathrooms, price. Keep it under 60 characters.`

const marketNewsSystemPrompt = `You are a real estate news writer. Generate 5 current, realistic news headlines about the London rental market. Include statistics, trends, and market insights. Format as a JSON array of strings.`

// ContentRewriter produces unique marketing text through the completion
// collaborator. Every operation has a deterministic fallback: a failed or
// malformed completion never propagates as an error.
type ContentRewriter struct {
	Client CompletionClient
}

func NewContentRewriter(client CompletionClient) *ContentRewriter {
	return &ContentRewriter{Client: client}
}

// RewriteDescription returns a rewritten, non-plagiarized description. On
// any failure the original description comes back unchanged.
func (r *ContentRewriter) RewriteDescription(ctx context.Context, original, title, borough string, bedrooms, bathrooms *int) string {
	prompt := fmt.Sprintf(
		"Rewrite this property description:\n\nTitle: %s\nBorough: %s\nBedrooms: %s\nBathrooms: %s\nOriginal Description: %s\n\nCreate a unique, engaging description that highlights the property's features and the area's benefits.",
		title,
		borough,
		orNotSpecified(bedrooms),
		orNotSpecified(bathrooms),
		original,
	)

	content, err := r.Client.Complete(ctx, []llm.Message{
		{Role: "system", Content: rewriteSystemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		log.Printf("[Rewriter] description rewrite failed, keeping original: %v", err)
		return original
	}

	return content
}

// GenerateSEOTitle returns a listing title capped at 60 characters. On
// failure it falls back to a templated title built from bedrooms and
// borough.
func (r *ContentRewriter) GenerateSEOTitle(ctx context.Context, borough string, bedrooms, bathrooms *int, rentPrice int) string {
	bathroomCount := "1"
	if bathrooms != nil {
		bathroomCount = strconv.Itoa(*bathrooms)
	}

	prompt := fmt.Sprintf(
		"Generate an SEO-optimized title for:\nBorough: %s\nBedrooms: %s\nBathrooms: %s\nPrice: £%d/month\n\nMake it catchy and include the main keywords.",
		borough,
		bedroomsWord(bedrooms),
		bathroomCount,
		rentPrice,
	)

	content, err := r.Client.Complete(ctx, []llm.Message{
		{Role: "system", Content: seoTitleSystemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		log.Printf("[Rewriter] title generation failed, using template: %v", err)
		return fallbackTitle(borough, bedrooms)
	}

	return truncateRunes(content, seoTitleMaxLen)
}

// GenerateMarketNews asks for five headlines as a JSON array. Anything
// unparseable yields an empty slice, never an error.
func (r *ContentRewriter) GenerateMarketNews(ctx context.Context) []string {
	content, err := r.Client.Complete(ctx, []llm.Message{
		{Role: "system", Content: marketNewsSystemPrompt},
		{Role: "user", Content: `Generate 5 news headlines about the London rental market for today. Include rental price trends, popular areas, market insights and seasonal trends. Return as JSON array: ["headline1", "headline2", ...]`},
	})
	if err != nil {
		log.Printf("[Rewriter] market news generation failed: %v", err)
		return nil
	}

	var headlines []string
	if err := json.Unmarshal([]byte(content), &headlines); err != nil {
		log.Printf("[Rewriter] market news response was not a JSON array")
		return nil
	}
	return headlines
}

func fallbackTitle(borough string, bedrooms *int) string {
	return fmt.Sprintf("%s-bed apartment in %s", bedroomsWord(bedrooms), borough)
}

// bedroomsWord renders a bedroom count for prompts and fallback titles.
// Zero and absent both read "Studio".
func bedroomsWord(bedrooms *int) string {
	if bedrooms == nil || *bedrooms == 0 {
		return "Studio"
	}
	return strconv.Itoa(*bedrooms)
}

func orNotSpecified(n *int) string {
	if n == nil {
		return "Not specified"
	}
	return strconv.Itoa(*n)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
