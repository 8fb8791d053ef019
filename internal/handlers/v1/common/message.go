package common

// MessageBody is the response of a mutation that only reports back a message.
type MessageBody struct {
	Message string `json:"message" doc:"Message from the upstream API"`
}

// MessageOutput is the Huma output of a message-only mutation.
type MessageOutput struct {
	Body MessageBody
}

// NewMessageOutput wraps an upstream message.
func NewMessageOutput(msg string) *MessageOutput {
	return &MessageOutput{Body: MessageBody{Message: msg}}
}
