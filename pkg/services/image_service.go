package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot/models"

	"github.com/dskvich/telemage/pkg/domain"
	"github.com/dskvich/telemage/pkg/logger"
)

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (domain.Generation, error)
}

type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, caption, filename string, data []byte) error
}

type Drive interface {
	Put(ctx context.Context, name string, data []byte) error
}

type Authenticator interface {
	IsAuthorized(userID int64) bool
}

type imageService struct {
	generator     ImageGenerator
	messenger     Messenger
	drive         Drive
	authenticator Authenticator
}

func NewImageService(
	generator ImageGenerator,
	messenger Messenger,
	drive Drive,
	authenticator Authenticator,
) *imageService {
	return &imageService{
		generator:     generator,
		messenger:     messenger,
		drive:         drive,
		authenticator: authenticator,
	}
}

// HandleUpdate answers one webhook update. The returned error is set only
// when an outbound call fails in transport or storage; user-facing failures
// and replies Telegram refuses are reported in the Result.
func (s *imageService) HandleUpdate(ctx context.Context, update *models.Update) (domain.Result, error) {
	if update == nil || update.Message == nil {
		slog.WarnContext(ctx, "Received update without message", "update", update)

		// nobody to reply to, so the platform's answer is only logged
		if err := s.messenger.SendText(ctx, domain.NoRecipient, domain.UnknownErrorText); err != nil {
			slog.WarnContext(ctx, "Fallback message not delivered", logger.Err(err))
		}
		return domain.Failed(domain.NoRecipient, domain.UnknownErrorText), nil
	}

	chatID := update.Message.Chat.ID
	prompt := update.Message.Text

	slog.InfoContext(ctx, "Processing message", "chatID", chatID)

	if reply, ok := domain.CommandText(prompt).Reply(); ok {
		return s.sendText(ctx, chatID, reply, domain.Sent(chatID))
	}

	var userID int64
	if update.Message.From != nil {
		userID = update.Message.From.ID
	}
	if !s.authenticator.IsAuthorized(userID) {
		slog.WarnContext(ctx, "Unauthorized access attempt", "userID", userID)
		return s.sendText(ctx, chatID, domain.NotAuthorizedText, domain.Failed(chatID, domain.NotAuthorizedText))
	}

	return s.generate(ctx, chatID, prompt)
}

func (s *imageService) generate(ctx context.Context, chatID int64, prompt string) (domain.Result, error) {
	slog.InfoContext(ctx, "Starting image generation", "prompt", prompt)

	gen, err := s.generator.GenerateImage(ctx, prompt)
	if err != nil {
		return domain.Result{}, fmt.Errorf("generating image: %w", err)
	}

	switch gen.Kind {
	case domain.GenerationImage:
		return s.storeAndSend(ctx, chatID, prompt, gen)

	case domain.GenerationFailed:
		slog.WarnContext(ctx, "Image generation rejected", "reason", gen.Error)
		return s.sendText(ctx, chatID, gen.Error, domain.Failed(chatID, gen.Error))

	default:
		slog.WarnContext(ctx, "Unexpected image generation response")
		return s.sendText(ctx, chatID, domain.UnknownErrorText, domain.Failed(chatID, domain.UnknownErrorText))
	}
}

func (s *imageService) storeAndSend(ctx context.Context, chatID int64, prompt string, gen domain.Generation) (domain.Result, error) {
	imageData, err := gen.Decode()
	if err != nil {
		return domain.Result{}, fmt.Errorf("decoding image: %w", err)
	}

	slog.InfoContext(ctx, "Image generated", "size", len(imageData), "created", gen.Created)

	filename := domain.Filename(gen.Created, prompt)
	if err := s.drive.Put(ctx, filename, imageData); err != nil {
		return domain.Result{}, fmt.Errorf("storing image: %w", err)
	}

	slog.InfoContext(ctx, "Image stored", "filename", filename)

	if err := s.messenger.SendPhoto(ctx, chatID, prompt, filename, imageData); err != nil {
		if err := undelivered(ctx, chatID, err); err != nil {
			return domain.Result{}, err
		}
	}

	return domain.StoredAndSent(chatID, prompt, filename), nil
}

func (s *imageService) sendText(ctx context.Context, chatID int64, text string, result domain.Result) (domain.Result, error) {
	if err := s.messenger.SendText(ctx, chatID, text); err != nil {
		if err := undelivered(ctx, chatID, err); err != nil {
			return domain.Result{}, err
		}
	}
	return result, nil
}

// undelivered drops platform rejections so the update is acknowledged and not redelivered.
func undelivered(ctx context.Context, chatID int64, err error) error {
	if !errors.Is(err, domain.ErrDeliveryRejected) {
		return err
	}
	slog.WarnContext(ctx, "Reply not delivered", "chatID", chatID, logger.Err(err))
	return nil
}
