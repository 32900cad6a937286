package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"laserwood/internal/domain/entities"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func sampleInquiry() entities.Inquiry {
	return entities.Inquiry{
		ID:              "3f2a9c1e-0000-4000-8000-000000000000",
		CustomerName:    "Ana <script>",
		CustomerEmail:   "ana@example.com",
		MaterialName:    "Plywood 4mm",
		WidthMM:         300,
		HeightMM:        150,
		ModelType:       entities.ModelDouble,
		HasLED:          true,
		LEDType:         entities.LED220V,
		CalculatedPrice: 4200,
	}
}

func TestFormatInquiry(t *testing.T) {
	text := formatInquiry(sampleInquiry(), "RSD")

	for _, want := range []string{"#3f2a9c1e", "Ana &lt;script&gt;", "300x150 mm", "LED: 220V", "4200 RSD"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in message:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Telefon") {
		t.Fatalf("expected phone line to be omitted")
	}
}

func TestTelegramNotifier_NotifyNewInquiry(t *testing.T) {
	t.Run("sends html message to chat", func(t *testing.T) {
		s := &fakeSender{}
		n := newTelegramNotifier(s, -100123, "RSD", zap.NewNop())

		if err := n.NotifyNewInquiry(context.Background(), sampleInquiry()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.sent) != 1 {
			t.Fatalf("expected one message, got %d", len(s.sent))
		}
		msg, ok := s.sent[0].(tgbotapi.MessageConfig)
		if !ok || msg.ChatID != -100123 || msg.ParseMode != tgbotapi.ModeHTML {
			t.Fatalf("unexpected message: %+v", s.sent[0])
		}
	})

	t.Run("send failure", func(t *testing.T) {
		s := &fakeSender{err: errors.New("forbidden")}
		n := newTelegramNotifier(s, 1, "RSD", zap.NewNop())

		if err := n.NotifyNewInquiry(context.Background(), sampleInquiry()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := &fakeSender{}
		n := newTelegramNotifier(s, 1, "RSD", zap.NewNop())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := n.NotifyNewInquiry(ctx, sampleInquiry()); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if len(s.sent) != 0 {
			t.Fatalf("expected nothing sent")
		}
	})
}
