package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/londonlets/api/internal/entity"
)

func TestUpdateLeadStatus_RejectsUnknownStatus(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewUpdateLeadStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), "lead-1", "archived")
	require.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Contains(t, err.Error(), "status must be")
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateLeadStatus_NotFound(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, entity.ErrLeadNotFound)

	uc := NewUpdateLeadStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), "missing", entity.LeadStatusContacted)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateLeadStatus_AnyTransitionAllowed(t *testing.T) {
	// The admin panel may move a lead backwards, converted to new included.
	lead := &entity.Lead{ID: "lead-1", Name: "Sarah Johnson", Status: entity.LeadStatusConverted}

	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "lead-1").Return(lead, nil)
	repo.On("UpdateStatus", mock.Anything, "lead-1", entity.LeadStatusNew).Return(nil)

	uc := NewUpdateLeadStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), "lead-1", entity.LeadStatusNew)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateLeadStatus_StoreFailureIsTechnical(t *testing.T) {
	lead := &entity.Lead{ID: "lead-1", Status: entity.LeadStatusNew}

	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "lead-1").Return(lead, nil)
	repo.On("UpdateStatus", mock.Anything, "lead-1", entity.LeadStatusQualified).Return(errors.New("timeout"))

	uc := NewUpdateLeadStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), "lead-1", entity.LeadStatusQualified)
	require.Error(t, err)
	assert.True(t, IsTechnicalError(err))
}

func TestUpdateLeadStatus_NotifierFailureDoesNotSurface(t *testing.T) {
	lead := &entity.Lead{ID: "lead-1", Name: "Sarah Johnson", Status: entity.LeadStatusNew}

	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "lead-1").Return(lead, nil)
	repo.On("UpdateStatus", mock.Anything, "lead-1", entity.LeadStatusContacted).Return(nil)

	notifier := &signalNotifier{sent: make(chan string, 1), err: errors.New("smtp down")}
	uc := NewUpdateLeadStatusUseCase(repo, notifier)

	err := uc.Execute(context.Background(), "lead-1", entity.LeadStatusContacted)
	require.NoError(t, err)

	select {
	case title := <-notifier.sent:
		assert.Equal(t, "Lead status updated: Sarah Johnson", title)
	case <-time.After(time.Second):
		t.Fatal("notifier was never called")
	}
}
