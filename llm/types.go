package llm

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single chat message.
type Message struct {
	Role    string `json:"role" yaml:"role"` // "system", "user", "assistant"
	Content string `json:"content" yaml:"content"`
}

// CompletionRequest is the input of Adapter.Execute.
type CompletionRequest struct {
	// Model overrides the adapter's default model.
	Model string `json:"model,omitempty" yaml:"model"`
	// Messages is the conversation history, sent after the system prompt.
	Messages []Message `json:"messages" yaml:"messages"`
	// SystemPrompt is prepended as a system message when set, even if the
	// text is empty. Nil sends the messages alone.
	SystemPrompt *string `json:"system_prompt,omitempty" yaml:"system_prompt"`
	// Temperature overrides the configured temperature when set.
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature"`
	// MaxTokens overrides the configured limit when positive.
	MaxTokens int `json:"max_tokens,omitempty" yaml:"max_tokens"`
}

// chatRequest is the OpenAI-compatible wire payload.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// chatResponse is the subset of the completion envelope that is read.
// A reply without choices, or a choice without message content, does not
// decode; an explicit empty choices array is EMPTY_RESPONSE.
type chatResponse struct {
	Choices []chatChoice `json:"choices" validate:"required,dive"`
}

type chatChoice struct {
	Message *chatReply `json:"message" validate:"required"`
}

type chatReply struct {
	Role    string  `json:"role"`
	Content *string `json:"content" validate:"required"`
}
