package schemas

// ChatMessage is the stored 1:1 message record (message:<id>). Read is set
// at send time and never consulted afterwards.
type ChatMessage struct {
	ID          string `json:"id"`
	SenderID    string `json:"senderId"`
	RecipientID string `json:"recipientId"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Read        bool   `json:"read"`
}

// SendMessageSchema struct
type SendMessageSchema struct {
	RecipientID string `json:"recipientId" validate:"required"`
	Message     string `json:"message" validate:"required,max=2000"`
}

// SendMessageResponse struct
type SendMessageResponse struct {
	Message ChatMessage `json:"message"`
}

// MessagesResponse struct
type MessagesResponse struct {
	Messages []ChatMessage `json:"messages"`
}
