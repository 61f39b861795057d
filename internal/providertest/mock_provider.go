package providertest

import (
	"context"
	"sync"

	"crimson-hq/crimson/pkg/providers"
)

// MockProvider is a scriptable implementation of the Provider interface.
// It records how often it was probed and called so orchestrator tests can
// assert on attempt ordering and counts.
type MockProvider struct {
	mu sync.Mutex

	name      string
	model     string
	available bool
	reply     string
	err       error

	sendCalls      int
	availableCalls int
	lastMessages   []providers.Message
}

// NewMockProvider creates an available mock provider that replies with a
// fixed string.
func NewMockProvider(name string) *MockProvider {
	return &MockProvider{
		name:      name,
		model:     "mock-model",
		available: true,
		reply:     "mock reply",
	}
}

// SetAvailable controls the outcome of Available.
func (m *MockProvider) SetAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = available
}

// SetReply sets the string returned from Send.
func (m *MockProvider) SetReply(reply string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reply = reply
}

// SetError makes Send fail with the given error.
func (m *MockProvider) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// SendCalls returns the number of Send invocations.
func (m *MockProvider) SendCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sendCalls
}

// AvailableCalls returns the number of Available invocations.
func (m *MockProvider) AvailableCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.availableCalls
}

// LastMessages returns the message slice from the most recent Send call.
func (m *MockProvider) LastMessages() []providers.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastMessages
}

// Send returns the scripted reply or error.
func (m *MockProvider) Send(ctx context.Context, msgs []providers.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sendCalls++
	m.lastMessages = append([]providers.Message(nil), msgs...)

	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// Available returns the scripted availability.
func (m *MockProvider) Available(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.availableCalls++
	return m.available
}

// Name returns the provider name.
func (m *MockProvider) Name() string {
	return m.name
}

// Model returns the configured model.
func (m *MockProvider) Model() string {
	return m.model
}

// Close is a no-op.
func (m *MockProvider) Close() error {
	return nil
}
