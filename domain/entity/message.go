package entity

// PromptMessage is one chat message sent to the completion provider.
type PromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewPromptMessage creates a prompt message.
func NewPromptMessage(role, content string) PromptMessage {
	return PromptMessage{Role: role, Content: content}
}

// SpeechResult is the raw output of the speech provider.
type SpeechResult struct {
	Audio []byte
	Mime  string
}

// ClientSettings is the dispatcher-side proxy configuration, resolved fresh
// on every dispatch.
type ClientSettings struct {
	EndpointURL string `yaml:"endpoint_url"`
	Token       string `yaml:"token,omitempty"`
}
