package service

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/sand1027/careerConnect/internal/config"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const chatSystemPrompt = "You are a helpful job-search assistant. Give short, concise answers."

var asteriskMarkup = regexp.MustCompile(`\*(.*?)\*`)

// conversation holds one user's chat history with an expiry.
type conversation struct {
	messages  []openai.ChatCompletionMessage
	expiresAt time.Time
}

// ChatService proxies user messages to an OpenAI-compatible completion API.
// Conversation state is keyed by user id in a TTL map, never shared across
// callers.
type ChatService struct {
	client     *openai.Client
	cfg        *config.Config
	log        *zap.Logger
	convos     map[string]*conversation
	convoMutex sync.Mutex
	ttl        time.Duration
}

// NewChatService creates a new chat service. With no API key configured
// the client stays nil and Ask degrades gracefully.
func NewChatService(cfg *config.Config, log *zap.Logger) *ChatService {
	var client *openai.Client
	if cfg.Chat.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.Chat.APIKey)
		if cfg.Chat.BaseURL != "" {
			clientCfg.BaseURL = cfg.Chat.BaseURL
		}
		client = openai.NewClientWithConfig(clientCfg)
	}

	ttlSec := cfg.Chat.HistoryTTLSec
	if ttlSec <= 0 {
		ttlSec = config.DefaultHistoryTTLSec
	}

	return &ChatService{
		client: client,
		cfg:    cfg,
		log:    log,
		convos: make(map[string]*conversation),
		ttl:    time.Duration(ttlSec) * time.Second,
	}
}

// Ask sends the user's message with their conversation history and returns
// the assistant's reply with asterisk markup stripped.
func (s *ChatService) Ask(ctx context.Context, userID, message string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("chat assistant is not configured")
	}

	messages := s.appendMessage(userID, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.cfg.Chat.Model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	reply := resp.Choices[0].Message.Content
	s.appendMessage(userID, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply,
	})

	return asteriskMarkup.ReplaceAllString(reply, "$1"), nil
}

// appendMessage records a message on the user's conversation and returns
// the full history to send. Expired conversations restart from the system
// prompt; histories are capped to the configured turn count.
func (s *ChatService) appendMessage(userID string, msg openai.ChatCompletionMessage) []openai.ChatCompletionMessage {
	s.convoMutex.Lock()
	defer s.convoMutex.Unlock()

	now := time.Now()
	convo, ok := s.convos[userID]
	if !ok || now.After(convo.expiresAt) {
		convo = &conversation{
			messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
			},
		}
		s.convos[userID] = convo
	}

	convo.messages = append(convo.messages, msg)
	convo.expiresAt = now.Add(s.ttl)

	maxTurns := s.cfg.Chat.MaxHistoryTurns
	if maxTurns > 0 && len(convo.messages) > maxTurns+1 {
		// Keep the system prompt plus the most recent turns.
		trimmed := make([]openai.ChatCompletionMessage, 0, maxTurns+1)
		trimmed = append(trimmed, convo.messages[0])
		trimmed = append(trimmed, convo.messages[len(convo.messages)-maxTurns:]...)
		convo.messages = trimmed
	}

	out := make([]openai.ChatCompletionMessage, len(convo.messages))
	copy(out, convo.messages)
	return out
}

// Reset drops a user's conversation history.
func (s *ChatService) Reset(userID string) {
	s.convoMutex.Lock()
	defer s.convoMutex.Unlock()
	delete(s.convos, userID)
}
