package services

import (
	"fmt"
	"net/url"
	"strings"
)

// VoiceMessageBuilder composes the TwiML instruction URL the telephony
// gateway fetches to obtain the spoken message. Pure string
// composition, no network access.
type VoiceMessageBuilder struct {
	baseURL string
}

// NewVoiceMessageBuilder creates a builder for the given base URL.
func NewVoiceMessageBuilder(baseURL string) *VoiceMessageBuilder {
	return &VoiceMessageBuilder{baseURL: strings.TrimRight(baseURL, "/")}
}

// BuildVoiceURL returns the instruction locator for one call. The user
// name is percent-encoded (space as %20, not +) so the locator is a
// well-formed URI for any Unicode name.
func (b *VoiceMessageBuilder) BuildVoiceURL(userName string, severityRating int) string {
	encoded := strings.ReplaceAll(url.QueryEscape(userName), "+", "%20")
	return fmt.Sprintf("%s/twiml/emergency-call?userName=%s&severity=%d", b.baseURL, encoded, severityRating)
}
