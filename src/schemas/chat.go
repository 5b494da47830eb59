package schemas

// ChatTurn is one prior turn of the advisor conversation, as supplied by the
// client. Role is "user" or "assistant".
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
