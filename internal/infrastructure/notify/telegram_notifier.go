package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts a short summary of every new inquiry to the
// studio's chat.
type TelegramNotifier struct {
	bot      sender
	chatID   int64
	currency string
	logger   *zap.Logger
}

var _ interfaces.IInquiryNotifier = (*TelegramNotifier)(nil)

// NewTelegramNotifier authenticates the bot token (getMe) before returning.
func NewTelegramNotifier(token string, chatID int64, currency string, logger *zap.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	logger.Info("telegram notifier enabled",
		zap.String("bot", bot.Self.UserName),
		zap.Int64("chat_id", chatID))
	return newTelegramNotifier(bot, chatID, currency, logger), nil
}

func newTelegramNotifier(bot sender, chatID int64, currency string, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID, currency: currency, logger: logger}
}

func (n *TelegramNotifier) NotifyNewInquiry(ctx context.Context, i entities.Inquiry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, formatInquiry(i, n.currency))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send inquiry %s: %w", i.ID, err)
	}
	n.logger.Debug("inquiry notification sent", zap.String("inquiry_id", i.ID))
	return nil
}

func formatInquiry(i entities.Inquiry, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>Novi upit</b> #%s\n", html.EscapeString(shortID(i.ID)))
	fmt.Fprintf(&b, "Kupac: %s\n", html.EscapeString(i.CustomerName))
	fmt.Fprintf(&b, "Email: %s\n", html.EscapeString(i.CustomerEmail))
	if i.CustomerPhone != "" {
		fmt.Fprintf(&b, "Telefon: %s\n", html.EscapeString(i.CustomerPhone))
	}
	fmt.Fprintf(&b, "Materijal: %s\n", html.EscapeString(i.MaterialName))
	fmt.Fprintf(&b, "Dimenzije: %gx%g mm\n", i.WidthMM, i.HeightMM)
	fmt.Fprintf(&b, "Model: %s\n", i.ModelType)
	if i.HasLED {
		led := string(i.LEDType)
		if led == "" {
			led = "da"
		}
		fmt.Fprintf(&b, "LED: %s\n", html.EscapeString(led))
	}
	fmt.Fprintf(&b, "Cena: <b>%.0f %s</b>", i.CalculatedPrice, html.EscapeString(currency))
	if i.Message != "" {
		fmt.Fprintf(&b, "\n\n%s", html.EscapeString(i.Message))
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
