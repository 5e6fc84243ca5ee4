package verification

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"lessonbot/internal/common/codes"
	"lessonbot/internal/notifier"
	verificationRepo "lessonbot/internal/repositories/verification"
)

// service implements the Service interface
type service struct {
	domain            string
	codeRepo          verificationRepo.Repository
	notifier          notifier.Notifier
	codes             codes.Generator
	dispatch          func(func())
	onDeliveryFailure DeliveryFailureFunc
	logger            *zap.Logger
}

// New creates a new verification service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.CodeRepo == nil {
		return nil, ErrNilCodeRepo
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Codes == nil {
		return nil, ErrNilGenerator
	}

	if cfg.Domain == "" {
		return nil, ErrEmptyDomain
	}

	dispatch := cfg.Dispatch
	if dispatch == nil {
		dispatch = func(fn func()) { go fn() }
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		domain:            cfg.Domain,
		codeRepo:          cfg.CodeRepo,
		notifier:          cfg.Notifier,
		codes:             cfg.Codes,
		dispatch:          dispatch,
		onDeliveryFailure: cfg.OnDeliveryFailure,
		logger:            logger,
	}, nil
}

// Issue generates, binds and dispatches a one-time code
func (s *service) Issue(ctx context.Context, input *IssueInput) (*IssueOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	email := strings.ToLower(input.Email)
	if !strings.HasSuffix(email, "@"+s.domain) {
		return nil, ErrInvalidDomain
	}

	code := s.codes.Generate()

	// Overwrites any prior unconsumed code for this chat
	err := s.codeRepo.BindCode(ctx, &verificationRepo.BindCodeInput{
		ChatID: input.ChatID,
		Code:   code,
	})
	if err != nil {
		return nil, err
	}

	chatID := input.ChatID
	s.dispatch(func() {
		sendErr := s.notifier.Send(context.Background(), &notifier.SendInput{
			Email: email,
			Code:  code,
		})
		if sendErr == nil {
			s.logger.Info("verification code delivered",
				zap.Int64("chat_id", chatID),
				zap.String("email", email))
			return
		}

		s.logger.Warn("verification code delivery failed",
			zap.Int64("chat_id", chatID),
			zap.String("email", email),
			zap.Error(sendErr))

		// The undelivered code must not stay checkable
		clearErr := s.codeRepo.ClearCode(context.Background(), &verificationRepo.ClearCodeInput{
			ChatID: chatID,
		})
		if clearErr != nil {
			s.logger.Error("failed to clear undelivered code",
				zap.Int64("chat_id", chatID),
				zap.Error(clearErr))
		}

		if s.onDeliveryFailure != nil {
			s.onDeliveryFailure(chatID, email, sendErr)
		}
	})

	return &IssueOutput{
		Code: code,
	}, nil
}

// Check consumes the pending code and compares it to the submitted value
func (s *service) Check(ctx context.Context, input *CheckInput) (*CheckOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// Consume first: one attempt per code, whatever was typed
	out, err := s.codeRepo.ConsumeCode(ctx, &verificationRepo.ConsumeCodeInput{
		ChatID: input.ChatID,
	})
	if err != nil {
		if errors.Is(err, verificationRepo.ErrCodeNotFound) {
			return &CheckOutput{Matched: false}, nil
		}
		return nil, err
	}

	submitted, err := strconv.Atoi(strings.TrimSpace(input.Submitted))
	if err != nil {
		return &CheckOutput{Matched: false}, nil
	}

	return &CheckOutput{
		Matched: submitted == out.Code,
	}, nil
}

// Invalidate discards any pending code for the chat
func (s *service) Invalidate(ctx context.Context, input *InvalidateInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return s.codeRepo.ClearCode(ctx, &verificationRepo.ClearCodeInput{
		ChatID: input.ChatID,
	})
}
