package dto

// ChatRequest payload for the assistant endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant reply.
type ChatResponse struct {
	Response string `json:"response"`
}
