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

// signalNotifier reports each Send on a channel so tests can wait for the
// async notification goroutine.
type signalNotifier struct {
	sent chan string
	err  error
}

func (n *signalNotifier) Send(title, content string) error {
	n.sent <- title
	return n.err
}

func validSubmitInput() SubmitLeadInput {
	return SubmitLeadInput{
		Name:         "Sarah Johnson",
		Email:        "sarah@example.com",
		Phone:        "+44 7700 900123",
		InterestedIn: entity.InterestRent,
		Borough:      "Camden",
		Budget:       intp(2000),
		Message:      "Looking for a 2-bed near the station",
	}
}

func TestSubmitLead_PersistsWithDefaults(t *testing.T) {
	repo := new(MockLeadRepository)
	var created []*entity.Lead
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Lead")).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(*entity.Lead))
		}).
		Return(nil)

	uc := NewSubmitLeadUseCase(repo, nil, nil)

	first, err := uc.Execute(context.Background(), validSubmitInput())
	require.NoError(t, err)
	assert.True(t, first.Success)
	assert.NotEmpty(t, first.ID)

	second, err := uc.Execute(context.Background(), validSubmitInput())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID, "each submission gets its own identity")

	require.Len(t, created, 2)
	assert.Equal(t, entity.LeadStatusNew, created[0].Status)
	assert.Equal(t, entity.DefaultLeadSource, created[0].Source)
	assert.False(t, created[0].CreatedAt.IsZero())
}

func TestSubmitLead_KeepsExplicitSource(t *testing.T) {
	repo := new(MockLeadRepository)
	var created *entity.Lead
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.Lead) }).
		Return(nil)

	uc := NewSubmitLeadUseCase(repo, nil, nil)

	input := validSubmitInput()
	input.Source = "referral"
	_, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "referral", created.Source)
}

func TestSubmitLead_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmitLeadInput)
		wantMsg string
	}{
		{
			name:    "missing name",
			mutate:  func(in *SubmitLeadInput) { in.Name = "  " },
			wantMsg: "name is required",
		},
		{
			name:    "malformed email",
			mutate:  func(in *SubmitLeadInput) { in.Email = "not-an-email" },
			wantMsg: "email is invalid",
		},
		{
			name:    "email with display name",
			mutate:  func(in *SubmitLeadInput) { in.Email = "Sarah <sarah@example.com>" },
			wantMsg: "email is invalid",
		},
		{
			name:    "unknown interest",
			mutate:  func(in *SubmitLeadInput) { in.InterestedIn = "renting" },
			wantMsg: "interested_in must be rent, buy or sell",
		},
		{
			name:    "negative budget",
			mutate:  func(in *SubmitLeadInput) { in.Budget = intp(-100) },
			wantMsg: "budget must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockLeadRepository)
			uc := NewSubmitLeadUseCase(repo, nil, nil)

			input := validSubmitInput()
			tt.mutate(&input)

			output, err := uc.Execute(context.Background(), input)
			assert.Nil(t, output)
			require.Error(t, err)
			assert.True(t, IsDomainError(err))
			assert.Equal(t, tt.wantMsg, err.Error())
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitLead_StoreFailureIsTechnical(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	uc := NewSubmitLeadUseCase(repo, nil, nil)

	output, err := uc.Execute(context.Background(), validSubmitInput())
	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	assert.Contains(t, err.Error(), "try again later")
}

func TestSubmitLead_NotificationFailureDoesNotSurface(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	notifier := &signalNotifier{sent: make(chan string, 1), err: errors.New("smtp down")}
	uc := NewSubmitLeadUseCase(repo, nil, notifier)

	output, err := uc.Execute(context.Background(), validSubmitInput())
	require.NoError(t, err)
	assert.True(t, output.Success)

	select {
	case title := <-notifier.sent:
		assert.Equal(t, "New lead: Sarah Johnson", title)
	case <-time.After(time.Second):
		t.Fatal("notifier was never called")
	}
}

func TestSubmitLead_QueueFailureFallsBackToInlineNotification(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	producer := new(MockProducer)
	producer.On("PublishLeadCaptured", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	notifier := &signalNotifier{sent: make(chan string, 1)}
	uc := NewSubmitLeadUseCase(repo, producer, notifier)

	output, err := uc.Execute(context.Background(), validSubmitInput())
	require.NoError(t, err)
	assert.True(t, output.Success)

	select {
	case <-notifier.sent:
	case <-time.After(time.Second):
		t.Fatal("inline notifier was never called after queue failure")
	}
}

func TestSubmitLead_QueueSuccessSkipsInlineNotification(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	published := make(chan struct{}, 1)
	producer := new(MockProducer)
	producer.On("PublishLeadCaptured", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { published <- struct{}{} }).
		Return(nil)

	notifier := &signalNotifier{sent: make(chan string, 1)}
	uc := NewSubmitLeadUseCase(repo, producer, notifier)

	_, err := uc.Execute(context.Background(), validSubmitInput())
	require.NoError(t, err)

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("producer was never called")
	}

	select {
	case <-notifier.sent:
		t.Fatal("inline notifier must not fire when the queue accepted the event")
	case <-time.After(100 * time.Millisecond):
	}
}
