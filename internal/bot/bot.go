// Package bot is the Telegram front end: it turns updates into conversation
// calls and renders the replies.
package bot

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/dh139/venom-blood-test-bot/internal/notification"
	"github.com/dh139/venom-blood-test-bot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const (
	pollTimeout    = 30
	exportFileName = "bookings.xlsx"
)

type Sender interface {
	SendText(ctx context.Context, chatID int64, text string, choices []domain.Choice) error
	SendMarkdown(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, name string, data []byte) error
	EditText(ctx context.Context, chatID int64, messageID int, text string) error
	AnswerCallback(ctx context.Context, callbackID, text string) error
}

type Conversation interface {
	Start(ctx context.Context, userID string) (domain.Reply, error)
	Handle(ctx context.Context, userID string, in domain.Input) (domain.Reply, error)
	Cancel(ctx context.Context, userID string) (bool, error)
	Summary(ctx context.Context, userID string) (*domain.Booking, error)
	HasBooking(ctx context.Context, userID string) (bool, error)
}

type Admin interface {
	Export(ctx context.Context, userID string) ([]byte, error)
	TriggerReminders(ctx context.Context, userID string, now time.Time) (*service.ReminderReport, error)
}

type updateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Bot struct {
	conv         Conversation
	admin        Admin
	sender       Sender
	supportPhone string
	now          func() time.Time
	logger       logger.Logger

	wg sync.WaitGroup
}

func New(conv Conversation, admin Admin, sender Sender, supportPhone string, logger logger.Logger) *Bot {
	return &Bot{
		conv:         conv,
		admin:        admin,
		sender:       sender,
		supportPhone: supportPhone,
		now:          time.Now,
		logger:       logger,
	}
}

// Run long-polls src until ctx is done. Each update is handled in its own
// goroutine; Run waits for in-flight handlers before returning.
func (b *Bot) Run(ctx context.Context, src updateSource) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = pollTimeout
	updates := src.GetUpdatesChan(cfg)

	b.logger.Info("telegram bot started")
	defer func() {
		b.wg.Wait()
		b.logger.Info("telegram bot stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			src.StopReceivingUpdates()
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				b.HandleUpdate(ctx, upd)
			}()
		}
	}
}

func (b *Bot) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	switch {
	case upd.CallbackQuery != nil:
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil && upd.Message.From != nil && upd.Message.Chat != nil:
		if upd.Message.IsCommand() {
			b.handleCommand(ctx, upd.Message)
			return
		}
		if upd.Message.Text != "" {
			b.handleText(ctx, upd.Message)
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := userKey(msg.From)

	switch msg.Command() {
	case "start":
		booked, err := b.conv.HasBooking(ctx, userID)
		if err != nil {
			b.fail(ctx, chatID, "check booking", err)
			return
		}
		if booked {
			b.sendText(ctx, chatID, prompts[domain.PromptAlreadyBooked], nil)
			return
		}
		b.sendMarkdown(ctx, chatID, welcomeText())

	case "booktest":
		reply, err := b.conv.Start(ctx, userID)
		b.logReplyError(userID, err)
		b.render(ctx, chatID, reply)

	case "summary":
		booking, err := b.conv.Summary(ctx, userID)
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			b.sendText(ctx, chatID, msgNoBooking, nil)
		case err != nil:
			b.fail(ctx, chatID, "load summary", err)
		default:
			b.sendMarkdown(ctx, chatID, notification.SummaryText(booking))
		}

	case "cancel":
		existed, err := b.conv.Cancel(ctx, userID)
		switch {
		case errors.Is(err, domain.ErrSessionBusy):
			b.sendText(ctx, chatID, promptText(domain.PromptSessionBusy), nil)
		case err != nil:
			b.fail(ctx, chatID, "cancel booking", err)
		case existed:
			b.sendText(ctx, chatID, msgCancelled, nil)
		default:
			b.sendText(ctx, chatID, msgNothingToCancel, nil)
		}

	case "help":
		b.sendMarkdown(ctx, chatID, helpText())

	case "support":
		b.sendMarkdown(ctx, chatID, supportText(b.supportPhone))

	case "exportall":
		data, err := b.admin.Export(ctx, userID)
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			b.sendText(ctx, chatID, msgUnauthorized, nil)
		case err != nil:
			b.logger.Error("export failed", logger.String("error", err.Error()))
			b.sendText(ctx, chatID, msgExportFailed, nil)
		default:
			if err = b.sender.SendDocument(ctx, chatID, exportFileName, data); err != nil {
				b.logger.Error("failed to send export", logger.String("error", err.Error()))
			}
		}

	case "testreminder":
		report, err := b.admin.TriggerReminders(ctx, userID, b.now())
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			b.sendText(ctx, chatID, msgUnauthorized, nil)
		case err != nil:
			b.logger.Error("manual reminders failed", logger.String("error", err.Error()))
			b.sendText(ctx, chatID, msgReminderFailed, nil)
		default:
			b.sendText(ctx, chatID, reminderReportText(report), nil)
		}

	default:
		b.sendText(ctx, chatID, msgUnknownCommand, nil)
	}
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	userID := userKey(msg.From)

	reply, err := b.conv.Handle(ctx, userID, domain.TextInput(msg.Text))
	if errors.Is(err, domain.ErrNoSession) {
		// Chatter outside a booking is ignored.
		return
	}
	b.logReplyError(userID, err)
	b.render(ctx, msg.Chat.ID, reply)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		return
	}

	choice, ok := domain.ParseChoice(cb.Data)
	if !ok {
		b.answer(ctx, cb.ID, msgUnknownOption)
		return
	}

	userID := userKey(cb.From)
	chatID := cb.Message.Chat.ID

	reply, err := b.conv.Handle(ctx, userID, domain.ChoiceInput(choice))
	b.logReplyError(userID, err)
	b.answer(ctx, cb.ID, callbackToast(reply))

	if reply.Selected != "" {
		if err = b.sender.EditText(ctx, chatID, cb.Message.MessageID, selectedText(choice.Kind, reply.Selected)); err != nil {
			b.logger.Warn("failed to edit message", logger.String("error", err.Error()))
		}
	}

	if !toastOnly(reply.Prompt) {
		b.render(ctx, chatID, reply)
	}
}

// render sends the reply prompt with its keyboard, if the prompt has text.
func (b *Bot) render(ctx context.Context, chatID int64, reply domain.Reply) {
	text := promptText(reply.Prompt)
	if text == "" {
		return
	}
	b.sendText(ctx, chatID, text, reply.Choices)
}

func (b *Bot) sendText(ctx context.Context, chatID int64, text string, choices []domain.Choice) {
	if err := b.sender.SendText(ctx, chatID, text, choices); err != nil {
		b.logger.Error("failed to send message",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
	}
}

func (b *Bot) sendMarkdown(ctx context.Context, chatID int64, text string) {
	if err := b.sender.SendMarkdown(ctx, chatID, text); err != nil {
		b.logger.Error("failed to send message",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
	}
}

func (b *Bot) answer(ctx context.Context, callbackID, text string) {
	if err := b.sender.AnswerCallback(ctx, callbackID, text); err != nil {
		b.logger.Warn("failed to answer callback", logger.String("error", err.Error()))
	}
}

func (b *Bot) fail(ctx context.Context, chatID int64, op string, err error) {
	b.logger.Error("command failed",
		logger.String("op", op),
		logger.String("error", err.Error()),
	)
	b.sendText(ctx, chatID, msgInternal, nil)
}

// logReplyError logs only failures the user cannot fix by answering again.
func (b *Bot) logReplyError(userID string, err error) {
	switch {
	case err == nil,
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnexpectedInput),
		errors.Is(err, domain.ErrSlotFull),
		errors.Is(err, domain.ErrSessionBusy),
		errors.Is(err, domain.ErrNoSession),
		errors.Is(err, domain.ErrAlreadyBooked):
		return
	}
	b.logger.Warn("booking step failed",
		logger.String("user_id", userID),
		logger.String("error", err.Error()),
	)
}

func userKey(u *tgbotapi.User) string {
	return strconv.FormatInt(u.ID, 10)
}
