package telephony

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/you/escalationsvc/domain"
)

// SimulatedGateway implements domain.CallGateway without touching the
// network. Used when Twilio credentials are not configured, so local
// and test environments can exercise the full escalation protocol.
type SimulatedGateway struct{}

// NewSimulatedGateway creates a simulation-mode gateway.
func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

// PlaceCall implements domain.CallGateway
func (g *SimulatedGateway) PlaceCall(ctx context.Context, to, from, voiceURL string) (*domain.CallHandle, error) {
	log.Printf("[ESCALATION-SIMULATION] would call %s from %s with instructions at %s", to, from, voiceURL)
	return &domain.CallHandle{
		Reference: "simulated-" + uuid.NewString(),
		Simulated: true,
	}, nil
}

// Compile-time interface compliance verification
var _ domain.CallGateway = (*SimulatedGateway)(nil)
