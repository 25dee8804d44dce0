package request

// InboundMessageRequest is one chat message forwarded by the WhatsApp
// bridge. `phone` is the sender in any accepted format; `text` is the raw
// message body, parsed as a command by the handler.

type InboundMessageRequest struct {
	Phone string `json:"phone" binding:"required"`
	Text  string `json:"text" binding:"required"`
}
