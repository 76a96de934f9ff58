package usecase

import (
	"context"

	"github.com/londonlets/api/internal/entity"
	"github.com/londonlets/api/internal/infra/integration/llm"
	"github.com/londonlets/api/internal/infra/queue"
)

// CompletionClient is the text-completion collaborator behind the content
// rewriter. Implementations must treat absent or non-string response
// content as an error, never as an empty success.
type CompletionClient interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// Notifier is the owner-notification side channel. Implementations log
// their own failures; callers never fail a lead operation because a
// notification could not be delivered.
type Notifier interface {
	Send(title, content string) error
}

type LeadEventProducer interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}

// SourceAdapter yields candidate listings from one upstream origin. A
// failing adapter contributes zero candidates to a run; it never aborts it.
type SourceAdapter interface {
	Source() string
	FetchProperties(ctx context.Context) ([]entity.ScrapedProperty, error)
}
