package game

import (
	"context"
	"sync"

	"github.com/codebreak/codebreak/internal/api"
)

// MockService implements Service for tests. It records every call and
// lets tests script responses per operation.
type MockService struct {
	mu sync.Mutex

	createFunc func(ctx context.Context) (string, error)
	submitFunc func(ctx context.Context, gameID, guess string) (api.Feedback, error)
	deleteFunc func(ctx context.Context, gameID string) error

	createCalls int
	submitCalls []MockSubmitCall
	deleteCalls []string
}

// MockSubmitCall records a SubmitGuess call.
type MockSubmitCall struct {
	GameID string
	Guess  string
}

// NewMockService creates a MockService that by default creates game
// "mock-game", scores every guess as a miss, and deletes without error.
func NewMockService() *MockService {
	return &MockService{}
}

// CreateGame records the call and runs the scripted response, defaulting
// to game id "mock-game".
func (m *MockService) CreateGame(ctx context.Context) (string, error) {
	m.mu.Lock()
	m.createCalls++
	fn := m.createFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}
	return "mock-game", nil
}

// SubmitGuess records the call and runs the scripted response, defaulting
// to zero feedback.
func (m *MockService) SubmitGuess(ctx context.Context, gameID, guess string) (api.Feedback, error) {
	m.mu.Lock()
	m.submitCalls = append(m.submitCalls, MockSubmitCall{GameID: gameID, Guess: guess})
	fn := m.submitFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, gameID, guess)
	}
	return api.Feedback{}, nil
}

// DeleteGame records the call and runs the scripted response.
func (m *MockService) DeleteGame(ctx context.Context, gameID string) error {
	m.mu.Lock()
	m.deleteCalls = append(m.deleteCalls, gameID)
	fn := m.deleteFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, gameID)
	}
	return nil
}

// SetCreateFunc sets a custom CreateGame response.
func (m *MockService) SetCreateFunc(fn func(ctx context.Context) (string, error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createFunc = fn
}

// SetSubmitFunc sets a custom SubmitGuess response.
func (m *MockService) SetSubmitFunc(fn func(ctx context.Context, gameID, guess string) (api.Feedback, error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitFunc = fn
}

// SetDeleteFunc sets a custom DeleteGame response.
func (m *MockService) SetDeleteFunc(fn func(ctx context.Context, gameID string) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteFunc = fn
}

// CreateCalls returns how many times CreateGame was called.
func (m *MockService) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

// SubmitCalls returns a copy of the recorded SubmitGuess calls.
func (m *MockService) SubmitCalls() []MockSubmitCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]MockSubmitCall, len(m.submitCalls))
	copy(result, m.submitCalls)
	return result
}

// DeleteCalls returns a copy of the recorded DeleteGame calls.
func (m *MockService) DeleteCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.deleteCalls))
	copy(result, m.deleteCalls)
	return result
}

// Verify MockService implements Service.
var _ Service = (*MockService)(nil)
