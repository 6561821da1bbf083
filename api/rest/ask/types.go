package ask

// request payload for asking a question about the agreement
type AskRequest struct {
	Question string `json:"question" binding:"required"`
	Visible  *bool  `json:"visible,omitempty"` // defaults to true
}

// response payload for an answered (or skipped) question
type AskResponse struct {
	Skipped          bool    `json:"skipped"`
	Answer           string  `json:"answer,omitempty"`
	Cost             float64 `json:"cost"`
	CostKnown        bool    `json:"cost_known"`
	Model            string  `json:"model,omitempty"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
}
