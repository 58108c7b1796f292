package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TwimlHandlers serves the spoken-message instructions the telephony
// gateway fetches when it connects an emergency call.
type TwimlHandlers struct{}

// NewTwimlHandlers creates new TwiML handlers
func NewTwimlHandlers() *TwimlHandlers {
	return &TwimlHandlers{}
}

type twimlSay struct {
	Voice string `xml:"voice,attr"`
	Text  string `xml:",chardata"`
}

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Say     []twimlSay
}

// EmergencyCall handles GET /twiml/emergency-call
func (h *TwimlHandlers) EmergencyCall(c *gin.Context) {
	userName := c.DefaultQuery("userName", "a user")
	severity := c.DefaultQuery("severity", "unknown")

	message := fmt.Sprintf(
		"This is an automated emergency alert. %s may need immediate support. "+
			"Our system rated the situation %s out of 5. Please reach out to them as soon as possible.",
		userName, severity,
	)

	body, err := xml.Marshal(twimlResponse{Say: []twimlSay{
		{Voice: "alice", Text: message},
		{Voice: "alice", Text: "This message will now repeat."},
		{Voice: "alice", Text: message},
	}})
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to render TwiML")
		return
	}

	c.Data(http.StatusOK, "text/xml; charset=utf-8", append([]byte(xml.Header), body...))
}
