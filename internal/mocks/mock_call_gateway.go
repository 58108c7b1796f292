package mocks

import (
	"context"

	"github.com/you/escalationsvc/domain"
)

// MockCallGateway implements domain.CallGateway interface for testing
type MockCallGateway struct {
	PlaceCallFunc func(ctx context.Context, to, from, voiceURL string) (*domain.CallHandle, error)

	// Calls records every invocation for assertion.
	Calls []MockCallRecord
}

// MockCallRecord captures the arguments of one PlaceCall invocation.
type MockCallRecord struct {
	To       string
	From     string
	VoiceURL string
}

// NewMockCallGateway creates a new MockCallGateway with default behaviors
func NewMockCallGateway() *MockCallGateway {
	return &MockCallGateway{}
}

// PlaceCall places a voice call
func (m *MockCallGateway) PlaceCall(ctx context.Context, to, from, voiceURL string) (*domain.CallHandle, error) {
	m.Calls = append(m.Calls, MockCallRecord{To: to, From: from, VoiceURL: voiceURL})
	if m.PlaceCallFunc != nil {
		return m.PlaceCallFunc(ctx, to, from, voiceURL)
	}
	// Default behavior: success with a fixed reference
	return &domain.CallHandle{Reference: "CA-mock"}, nil
}

// MockGatewaySelector implements domain.CallGatewaySelector for testing
type MockGatewaySelector struct {
	SelectFunc func() domain.CallGateway
	Gateway    domain.CallGateway
}

// NewMockGatewaySelector creates a selector that always returns gw
func NewMockGatewaySelector(gw domain.CallGateway) *MockGatewaySelector {
	return &MockGatewaySelector{Gateway: gw}
}

// Select picks the gateway for one attempt
func (m *MockGatewaySelector) Select() domain.CallGateway {
	if m.SelectFunc != nil {
		return m.SelectFunc()
	}
	return m.Gateway
}

// Compile-time interface compliance verification
var (
	_ domain.CallGateway         = (*MockCallGateway)(nil)
	_ domain.CallGatewaySelector = (*MockGatewaySelector)(nil)
)
