package twilio

import (
	"encoding/xml"
	"fmt"
	"net/http"
)

// messagingResponse is the TwiML envelope for an outbound SMS reply.
type messagingResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// EncodeReply renders a single-message TwiML document.
func EncodeReply(message string) ([]byte, error) {
	body, err := xml.Marshal(messagingResponse{Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to encode TwiML: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// WriteReply writes a TwiML reply over the webhook response.
func WriteReply(w http.ResponseWriter, message string) {
	body, err := EncodeReply(message)
	if err != nil {
		http.Error(w, "failed to encode reply", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
