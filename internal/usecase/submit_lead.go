package usecase

import (
	"context"
	"log"

	"github.com/londonlets/api/internal/entity"
	"github.com/londonlets/api/internal/infra/queue"
)

type SubmitLeadInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	InterestedIn string `json:"interested_in"`
	Borough      string `json:"borough"`
	Budget       *int   `json:"budget"`
	Message      string `json:"message"`
	Source       string `json:"source"`
}

type SubmitLeadOutput struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

type SubmitLeadUseCase struct {
	Repo     entity.LeadRepositoryInterface
	Producer LeadEventProducer
	Notifier Notifier
}

func NewSubmitLeadUseCase(
	repo entity.LeadRepositoryInterface,
	producer LeadEventProducer,
	notifier Notifier,
) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		Repo:     repo,
		Producer: producer,
		Notifier: notifier,
	}
}

func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	validationErrors := ValidateSubmitLeadInput(input)
	if len(validationErrors) > 0 {
		first := validationErrors[0]
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: first.Field + " " + first.Message,
		}
	}

	lead := entity.NewLead(
		input.Name,
		input.Email,
		input.Phone,
		input.InterestedIn,
		input.Borough,
		input.Budget,
		input.Message,
		input.Source,
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		log.Printf("[Leads] create failed: %v", err)
		return nil, storeUnavailable("save your request")
	}

	// The submitter only waits for the write. Owner notification happens
	// off the request path and its failure is logged, never surfaced.
	go uc.notify(lead)

	return &SubmitLeadOutput{ID: lead.ID, Success: true}, nil
}

func (uc *SubmitLeadUseCase) notify(lead *entity.Lead) {
	payload := queue.LeadCapturedPayload{
		LeadID:       lead.ID,
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		InterestedIn: lead.InterestedIn,
		Borough:      lead.Borough,
		Budget:       lead.Budget,
		Message:      lead.Message,
		Source:       lead.Source,
	}

	if uc.Producer != nil {
		if err := uc.Producer.PublishLeadCaptured(context.Background(), payload); err == nil {
			return // the queue worker delivers the notification
		} else {
			log.Printf("[Leads] queue publish failed for %s, notifying inline: %v", lead.ID, err)
		}
	}

	if uc.Notifier == nil {
		return
	}
	title, content := payload.Summary()
	if err := uc.Notifier.Send(title, content); err != nil {
		log.Printf("[Leads] notification failed for %s: %v", lead.ID, err)
	}
}
