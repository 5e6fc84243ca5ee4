package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"lessonbot/internal/services/conversation"
)

// Bot represents the Telegram bot instance. It maps incoming updates to
// conversation intents and renders the returned prompts as messages
// with inline keyboards.
type Bot struct {
	api    *tgbotapi.BotAPI
	engine conversation.Service
	logger *zap.Logger
	config *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Telegram bot token
	Token string

	// Conversation engine
	Engine conversation.Service

	// PollTimeout is the long-poll timeout in seconds. Defaults to 30.
	PollTimeout int

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// New creates a new Telegram bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Engine == nil {
		return nil, errors.New("conversation engine cannot be nil")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram session: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Bot{
		api:    api,
		engine: cfg.Engine,
		logger: logger,
		config: cfg,
	}, nil
}

// Start begins long-polling for updates. It blocks until the context is
// cancelled.
func (b *Bot) Start(ctx context.Context) error {
	timeout := b.config.PollTimeout
	if timeout <= 0 {
		timeout = 30
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeout

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("bot is now running", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			// Per-chat ordering is enforced by the session store, so
			// updates can be handled concurrently
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate converts one update into an intent and replies with the
// resulting prompt
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.Text != "":
		b.handleText(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleText(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	out, err := b.engine.HandleIntent(ctx, &conversation.HandleIntentInput{
		Intent: &conversation.Intent{
			ChatID:  chatID,
			Kind:    conversation.IntentText,
			Payload: message.Text,
		},
	})
	if err != nil {
		b.logger.Error("failed to handle text intent",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return
	}

	if _, err := b.api.Send(renderMessage(chatID, out.Prompt)); err != nil {
		b.logger.Error("failed to send reply",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID

	// Ack the button press so the client stops its spinner
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.logger.Warn("failed to answer callback query",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	out, err := b.engine.HandleIntent(ctx, &conversation.HandleIntentInput{
		Intent: &conversation.Intent{
			ChatID:  chatID,
			Kind:    conversation.IntentChoice,
			Payload: callback.Data,
		},
	})
	if err != nil {
		b.logger.Error("failed to handle choice intent",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return
	}

	// Button-driven screens replace the originating message in place
	if _, err := b.api.Send(renderEdit(chatID, callback.Message.MessageID, out.Prompt)); err != nil {
		b.logger.Error("failed to edit message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// NotifyDeliveryFailure tells the chat its verification email could not
// be sent. Wired as the verification service's asynchronous failure
// callback.
func (b *Bot) NotifyDeliveryFailure(chatID int64, email string, sendErr error) {
	b.logger.Warn("reporting delivery failure to chat",
		zap.Int64("chat_id", chatID),
		zap.Error(sendErr))

	msg := tgbotapi.NewMessage(chatID, "Non siamo riusciti a inviare l'email di verifica. Riprova con /start.")
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to report delivery failure",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
