package request

// WhatsAppSendRequest is the POST /send-whatsapp payload. Both fields are
// required; the usecase rejects blank values.

type WhatsAppSendRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
