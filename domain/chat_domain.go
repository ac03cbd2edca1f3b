package domain

var (
	MessageSuccessChat = "chat response generated successfully"
	MessageFailedChat  = "failed to generate chat response"
)

type (
	ChatRequest struct {
		Message string `json:"message" validate:"required,min=1,max=2000"`
	}

	ChatResponse struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
)
