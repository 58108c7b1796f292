package telephony

import (
	"context"
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/you/escalationsvc/domain"
)

// TwilioGateway implements domain.CallGateway against the Twilio voice
// API. The HTTP timeout is set on the client because twilio-go does not
// take a context; a stalled provider fails the call instead of blocking
// the escalation indefinitely.
type TwilioGateway struct {
	client *twilio.RestClient
}

// NewTwilioGateway creates a live gateway from provisioned credentials.
func NewTwilioGateway(accountSID, authToken string, timeout time.Duration) *TwilioGateway {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	client.SetTimeout(timeout)

	return &TwilioGateway{client: client}
}

// PlaceCall implements domain.CallGateway
func (g *TwilioGateway) PlaceCall(ctx context.Context, to, from, voiceURL string) (*domain.CallHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCallGateway, err)
	}

	params := &twilioApi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetUrl(voiceURL)

	call, err := g.client.Api.CreateCall(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCallGateway, err)
	}

	handle := &domain.CallHandle{}
	if call.Sid != nil {
		handle.Reference = *call.Sid
	}
	return handle, nil
}

// Compile-time interface compliance verification
var _ domain.CallGateway = (*TwilioGateway)(nil)
