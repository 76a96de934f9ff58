package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/londonlets/api/internal/infra/integration/llm"
	"github.com/londonlets/api/internal/usecase"
)

// Manual smoke run against a real completion endpoint. Not part of the
// service; run with LLM_API_URL and LLM_API_KEY set.
func main() {
	godotenv.Load()

	client := llm.NewClient(os.Getenv("LLM_API_KEY"), os.Getenv("LLM_API_URL"), os.Getenv("LLM_MODEL"))
	rewriter := usecase.NewContentRewriter(client)

	ctx := context.Background()
	bedrooms := 2
	bathrooms := 1

	title := rewriter.GenerateSEOTitle(ctx, "Westminster", &bedrooms, &bathrooms, 2500)
	fmt.Println("Title:", title)

	description := rewriter.RewriteDescription(ctx,
		"Beautiful modern apartment with stunning views of the city",
		"Modern 2-bed apartment in Westminster",
		"Westminster", &bedrooms, &bathrooms,
	)
	fmt.Println("Description:", description)

	for _, headline := range rewriter.GenerateMarketNews(ctx) {
		fmt.Println("News:", headline)
	}
}
