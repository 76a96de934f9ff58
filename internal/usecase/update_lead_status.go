package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/londonlets/api/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	Repo     entity.LeadRepositoryInterface
	Notifier Notifier
}

func NewUpdateLeadStatusUseCase(repo entity.LeadRepositoryInterface, notifier Notifier) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{
		Repo:     repo,
		Notifier: notifier,
	}
}

// Execute writes the new status unconditionally. Only the vocabulary is
// checked; the transition relation is open (converted back to new is
// accepted, matching the admin panel's behaviour).
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, id, status string) error {
	if !entity.ValidLeadStatus(status) {
		return &DomainError{
			Code:    CodeInvalidStatus,
			Message: "status must be new, contacted, qualified or converted",
		}
	}

	lead, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return err
		}
		log.Printf("[Leads] lookup failed for %s: %v", id, err)
		return storeUnavailable("update the lead")
	}

	oldStatus := lead.Status
	if err := uc.Repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return err
		}
		log.Printf("[Leads] status update failed for %s: %v", id, err)
		return storeUnavailable("update the lead")
	}

	go uc.notifyStatusChange(lead, oldStatus, status)

	return nil
}

func (uc *UpdateLeadStatusUseCase) notifyStatusChange(lead *entity.Lead, oldStatus, newStatus string) {
	if uc.Notifier == nil {
		return
	}

	title := "Lead status updated: " + lead.Name
	content := fmt.Sprintf(
		"Lead status changed:\n\nName: %s\nEmail: %s\nPrevious status: %s\nNew status: %s",
		lead.Name,
		lead.Email,
		StatusLabel(oldStatus),
		StatusLabel(newStatus),
	)

	if err := uc.Notifier.Send(title, content); err != nil {
		log.Printf("[Leads] status notification failed for %s: %v", lead.ID, err)
	}
}
