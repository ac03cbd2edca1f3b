package chat

import (
	"Pento-Service/domain"
	"Pento-Service/pkg/entitlement"
	"Pento-Service/pkg/gemini"
	"context"
)

type (
	ChatService interface {
		Chat(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error)
	}

	chatService struct {
		gemini       gemini.GeminiClient
		entitlements entitlement.EntitlementService
	}
)

func NewChatService(geminiClient gemini.GeminiClient, entitlements entitlement.EntitlementService) ChatService {
	return &chatService{
		gemini:       geminiClient,
		entitlements: entitlements,
	}
}

func (s *chatService) Chat(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error) {
	if err := s.entitlements.CheckAndReserve(ctx, userID, domain.FeatureAIChef); err != nil {
		return domain.ChatResponse{}, err
	}

	content, err := s.gemini.Chat(ctx, req.Message)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	// Chat usage counts unconditionally once the model answered, even on
	// the unlimited (nil quota) path.
	if err := s.entitlements.Commit(ctx, userID, domain.FeatureAIChef); err != nil {
		return domain.ChatResponse{}, err
	}

	return domain.ChatResponse{Role: "assistant", Content: content}, nil
}
