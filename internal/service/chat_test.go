package service

import (
	"context"
	"testing"
	"time"

	"github.com/sand1027/careerConnect/internal/config"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newChatService(maxTurns, ttlSec int) *ChatService {
	cfg := &config.Config{}
	cfg.Chat.MaxHistoryTurns = maxTurns
	cfg.Chat.HistoryTTLSec = ttlSec
	return NewChatService(cfg, zap.NewNop())
}

func TestAskUnconfigured(t *testing.T) {
	svc := newChatService(10, 60)

	_, err := svc.Ask(context.Background(), "u1", "hello")
	assert.Error(t, err)
}

func TestConversationStartsWithSystemPrompt(t *testing.T) {
	svc := newChatService(10, 60)

	got := svc.appendMessage("u1", openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: "hi",
	})
	require.Len(t, got, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got[0].Role)
	assert.Equal(t, "hi", got[1].Content)
}

func TestConversationsAreIsolatedPerUser(t *testing.T) {
	svc := newChatService(10, 60)

	svc.appendMessage("u1", openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: "from u1",
	})
	got := svc.appendMessage("u2", openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: "from u2",
	})

	require.Len(t, got, 2)
	assert.Equal(t, "from u2", got[1].Content)
}

func TestHistoryTrimKeepsSystemPrompt(t *testing.T) {
	svc := newChatService(4, 60)

	var got []openai.ChatCompletionMessage
	for i := 0; i < 10; i++ {
		got = svc.appendMessage("u1", openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser, Content: "turn",
		})
	}

	require.Len(t, got, 5)
	assert.Equal(t, openai.ChatMessageRoleSystem, got[0].Role)
	assert.Equal(t, chatSystemPrompt, got[0].Content)
}

func TestExpiredConversationRestarts(t *testing.T) {
	svc := newChatService(10, 60)
	svc.ttl = -time.Second

	svc.appendMessage("u1", openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: "old",
	})
	got := svc.appendMessage("u1", openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: "new",
	})

	require.Len(t, got, 2)
	assert.Equal(t, "new", got[1].Content)
}

func TestResetDropsHistory(t *testing.T) {
	svc := newChatService(10, 60)

	svc.appendMessage("u1", openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: "old",
	})
	svc.Reset("u1")
	got := svc.appendMessage("u1", openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: "fresh",
	})

	require.Len(t, got, 2)
	assert.Equal(t, "fresh", got[1].Content)
}
