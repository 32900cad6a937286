package request

import (
	"encoding/json"
	"testing"

	"laserwood/internal/domain/entities"
)

func TestQuoteRequest_ToConfiguration(t *testing.T) {
	t.Run("defaults model to single", func(t *testing.T) {
		cfg := QuoteRequest{WidthMM: 300, HeightMM: 150, MaterialID: 7}.ToConfiguration()
		if cfg.ModelType != entities.ModelSingle {
			t.Fatalf("expected single, got %q", cfg.ModelType)
		}
	})

	t.Run("keeps unknown model for validation", func(t *testing.T) {
		cfg := QuoteRequest{ModelType: " neon "}.ToConfiguration()
		if cfg.ModelType != "neon" {
			t.Fatalf("expected neon, got %q", cfg.ModelType)
		}
	})

	t.Run("copies led", func(t *testing.T) {
		cfg := QuoteRequest{HasLED: true, LEDType: "220V"}.ToConfiguration()
		if !cfg.HasLED || cfg.LEDType != entities.LED220V {
			t.Fatalf("unexpected led: %+v", cfg)
		}
	})
}

func TestInquiryRequest_IgnoresClientPrice(t *testing.T) {
	body := `{"customer_name":"Ana","customer_email":"ana@example.com","width_mm":300,"height_mm":150,
		"material_id":7,"model_type":"double","calculated_price":1}`

	var r InquiryRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	in := r.ToInput("10.0.0.1")
	if in.CustomerName != "Ana" || in.Configuration.WidthMM != 300 || in.Configuration.ModelType != entities.ModelDouble {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.ClientKey != "10.0.0.1" {
		t.Fatalf("expected client key, got %q", in.ClientKey)
	}
}

func TestAdminReviewRequest_ToEntity(t *testing.T) {
	r := AdminReviewRequest{ReviewRequest: ReviewRequest{CustomerName: "Marko", Rating: 5, Comment: "Top"}, Verified: true}
	e := r.ToEntity(4)
	if e.ID != 4 || !e.Verified || e.Rating != 5 {
		t.Fatalf("unexpected review: %+v", e)
	}
}
