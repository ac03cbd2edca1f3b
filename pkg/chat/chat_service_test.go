package chat_test

import (
	"Pento-Service/domain"
	"Pento-Service/pkg/chat"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeChatGemini struct {
	reply string
	calls int
}

func (g *fakeChatGemini) RecognizeFromImage(ctx context.Context, image []byte, mimeType string) ([]domain.RawScanItem, error) {
	return nil, nil
}

func (g *fakeChatGemini) RecognizeFromReceiptText(ctx context.Context, ocrText string) ([]domain.RawScanItem, error) {
	return nil, nil
}

func (g *fakeChatGemini) NormalizeBarcodeProduct(ctx context.Context, info domain.ExtractedProductInfo) (domain.RawScanItem, error) {
	return domain.RawScanItem{}, nil
}

func (g *fakeChatGemini) Chat(ctx context.Context, message string) (string, error) {
	g.calls++
	return g.reply, nil
}

type fakeChatGate struct {
	gateErr   error
	commitErr error
	committed []string
}

func (e *fakeChatGate) CheckAndReserve(ctx context.Context, userID, featureCode string) error {
	return e.gateErr
}

func (e *fakeChatGate) Commit(ctx context.Context, userID, featureCode string) error {
	if e.commitErr != nil {
		return e.commitErr
	}
	e.committed = append(e.committed, featureCode)
	return nil
}

func TestChatCommitsUsage(t *testing.T) {
	gemini := &fakeChatGemini{reply: "Try a frittata with the leftover spinach."}
	gate := &fakeChatGate{}
	svc := chat.NewChatService(gemini, gate)

	res, err := svc.Chat(context.Background(), domain.ChatRequest{Message: "What can I cook tonight?"}, uuid.NewString())
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if res.Role != "assistant" || res.Content != gemini.reply {
		t.Fatalf("unexpected response: %+v", res)
	}
	if len(gate.committed) != 1 || gate.committed[0] != domain.FeatureAIChef {
		t.Fatalf("committed = %v, want one AI_CHEF commit", gate.committed)
	}
}

func TestChatCommitFailureWithholdsResponse(t *testing.T) {
	gemini := &fakeChatGemini{reply: "Use the tomatoes before Friday."}
	gate := &fakeChatGate{commitErr: errors.New("connection reset by peer")}
	svc := chat.NewChatService(gemini, gate)

	res, err := svc.Chat(context.Background(), domain.ChatRequest{Message: "What expires soon?"}, uuid.NewString())
	if err == nil {
		t.Fatal("expected the commit failure to surface")
	}
	if res.Content != "" {
		t.Fatalf("response must be withheld on commit failure, got %q", res.Content)
	}
}

func TestChatDeniedByGate(t *testing.T) {
	gemini := &fakeChatGemini{}
	gate := &fakeChatGate{gateErr: domain.NewFailure(domain.KindEntitlementMissing, "feature not available", nil)}
	svc := chat.NewChatService(gemini, gate)

	_, err := svc.Chat(context.Background(), domain.ChatRequest{Message: "hi"}, uuid.NewString())
	if domain.KindOf(err) != domain.KindEntitlementMissing {
		t.Fatalf("err = %v, want entitlement-missing failure", err)
	}
	if gemini.calls != 0 {
		t.Fatal("denied chat must not reach the model")
	}
	if len(gate.committed) != 0 {
		t.Fatalf("denied chat must not commit, got %v", gate.committed)
	}
}
