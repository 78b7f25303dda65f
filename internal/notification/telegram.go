package notification

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

var ErrBadChatID = errors.New("invalid telegram chat id")

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI, logger logger.Logger) *TelegramNotifier {
	if bot == nil {
		logger.Warn("telegram bot is not configured, notifications disabled")
	}
	return &TelegramNotifier{bot: bot, logger: logger}
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) error {
	return n.sendMarkdown(ctx, b.UserID, ConfirmationText(b))
}

func (n *TelegramNotifier) NotifyTicket(ctx context.Context, userID string, png []byte) error {
	chatID, err := parseChatID(userID)
	if err != nil {
		return err
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "ticket.png", Bytes: png})
	photo.Caption = TicketCaption
	return n.send(ctx, photo)
}

func (n *TelegramNotifier) NotifyTicketFailed(ctx context.Context, userID string) error {
	chatID, err := parseChatID(userID)
	if err != nil {
		return err
	}
	return n.SendText(ctx, chatID, TicketFailedText, nil)
}

func (n *TelegramNotifier) NotifySameDay(ctx context.Context, b *domain.Booking, manual bool) error {
	return n.sendMarkdown(ctx, b.UserID, SameDayText(b, manual))
}

func (n *TelegramNotifier) NotifyDayBefore(ctx context.Context, b *domain.Booking, manual bool) error {
	return n.sendMarkdown(ctx, b.UserID, DayBeforeText(b, manual))
}

// SendText sends plain text, with an inline keyboard when choices are given.
func (n *TelegramNotifier) SendText(ctx context.Context, chatID int64, text string, choices []domain.Choice) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if len(choices) > 0 {
		msg.ReplyMarkup = Keyboard(choices)
	}
	return n.send(ctx, msg)
}

func (n *TelegramNotifier) SendMarkdown(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	return n.send(ctx, msg)
}

func (n *TelegramNotifier) SendDocument(ctx context.Context, chatID int64, name string, data []byte) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	return n.send(ctx, doc)
}

func (n *TelegramNotifier) EditText(ctx context.Context, chatID int64, messageID int, text string) error {
	return n.send(ctx, tgbotapi.NewEditMessageText(chatID, messageID, text))
}

// AnswerCallback acknowledges a button press, optionally with a toast text.
func (n *TelegramNotifier) AnswerCallback(ctx context.Context, callbackID, text string) error {
	if n.bot == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := n.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}

// Keyboard lays out choices as inline buttons: gender choices two per row,
// everything else one per row.
func Keyboard(choices []domain.Choice) tgbotapi.InlineKeyboardMarkup {
	perRow := 1
	if choices[0].Kind == domain.ChoiceGender {
		perRow = 2
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(choices); i += perRow {
		end := min(i+perRow, len(choices))
		row := make([]tgbotapi.InlineKeyboardButton, 0, perRow)
		for _, c := range choices[i:end] {
			label := c.Label
			if label == "" {
				label = c.Value
			}
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, c.Data()))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (n *TelegramNotifier) sendMarkdown(ctx context.Context, userID, text string) error {
	chatID, err := parseChatID(userID)
	if err != nil {
		return err
	}
	return n.SendMarkdown(ctx, chatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, c tgbotapi.Chattable) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)")
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("notification skipped: %w", err)
	}

	if _, err := n.bot.Send(c); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

// parseChatID maps a user id to a chat id; in private chats they are equal.
func parseChatID(userID string) (int64, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadChatID, userID)
	}
	return id, nil
}
