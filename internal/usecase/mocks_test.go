package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/londonlets/api/internal/entity"
	"github.com/londonlets/api/internal/infra/integration/llm"
	"github.com/londonlets/api/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context, filter entity.LeadFilter) ([]*entity.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockPropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Property), args.Error(1)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(title, content string) error {
	args := m.Called(title, content)
	return args.Error(0)
}

// MockProducer
type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// fakeCompletionClient lets each test script the collaborator's answer.
type fakeCompletionClient struct {
	fn func(messages []llm.Message) (string, error)
}

func (f *fakeCompletionClient) Complete(_ context.Context, messages []llm.Message) (string, error) {
	return f.fn(messages)
}

func completionReturning(content string) *fakeCompletionClient {
	return &fakeCompletionClient{fn: func([]llm.Message) (string, error) {
		return content, nil
	}}
}

func completionFailing(err error) *fakeCompletionClient {
	return &fakeCompletionClient{fn: func([]llm.Message) (string, error) {
		return "", err
	}}
}

func intp(n int) *int {
	return &n
}

// stubAdapter is a scripted source adapter for pipeline tests.
type stubAdapter struct {
	source string
	batch  []entity.ScrapedProperty
	err    error
}

func (a *stubAdapter) Source() string {
	return a.source
}

func (a *stubAdapter) FetchProperties(_ context.Context) ([]entity.ScrapedProperty, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.batch, nil
}
