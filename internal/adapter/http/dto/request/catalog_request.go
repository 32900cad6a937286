package request

import "laserwood/internal/domain/entities"

type MaterialRequest struct {
	Name             string    `json:"name" binding:"required"`
	Description      string    `json:"description"`
	ThicknessOptions []float64 `json:"thickness_options"`
	IndoorOutdoor    string    `json:"indoor_outdoor"`
	MaintenanceInfo  string    `json:"maintenance_info"`
	PricePerM2       float64   `json:"price_per_m2"`
	ImageURL         string    `json:"image_url"`
}

func (r MaterialRequest) ToEntity(id int64) entities.Material {
	return entities.Material{
		ID:               id,
		Name:             r.Name,
		Description:      r.Description,
		ThicknessOptions: r.ThicknessOptions,
		IndoorOutdoor:    r.IndoorOutdoor,
		MaintenanceInfo:  r.MaintenanceInfo,
		PricePerM2:       r.PricePerM2,
		ImageURL:         r.ImageURL,
	}
}

// PricingRuleRequest: MaterialID is read on create only.
type PricingRuleRequest struct {
	MaterialID            int64   `json:"material_id"`
	BasePriceM2           float64 `json:"base_price_m2"`
	ModelDoubleMultiplier float64 `json:"model_double_multiplier"`
	Model3DMarkupPercent  float64 `json:"model_3d_markup_percent"`
	LEDFixedPrice         float64 `json:"led_fixed_price"`
	MinimumOrder          float64 `json:"minimum_order"`
}

func (r PricingRuleRequest) ToEntity(id int64) entities.PricingRule {
	return entities.PricingRule{
		ID:                    id,
		MaterialID:            r.MaterialID,
		BasePriceM2:           r.BasePriceM2,
		ModelDoubleMultiplier: r.ModelDoubleMultiplier,
		Model3DMarkupPercent:  r.Model3DMarkupPercent,
		LEDFixedPrice:         r.LEDFixedPrice,
		MinimumOrder:          r.MinimumOrder,
	}
}

type WorkRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	MaterialID  *int64   `json:"material_id"`
	Dimensions  string   `json:"dimensions"`
	HasLED      bool     `json:"has_led"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
}

func (r WorkRequest) ToEntity(id int64) entities.Work {
	return entities.Work{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		MaterialID:  r.MaterialID,
		Dimensions:  r.Dimensions,
		HasLED:      r.HasLED,
		Tags:        r.Tags,
		Images:      r.Images,
		Featured:    r.Featured,
	}
}

// ReviewRequest is the public review form; it cannot set Verified.
type ReviewRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment" binding:"required"`
	PhotoURL     string `json:"photo_url"`
}

func (r ReviewRequest) ToEntity() entities.Review {
	return entities.Review{
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		PhotoURL:     r.PhotoURL,
	}
}

type AdminReviewRequest struct {
	ReviewRequest
	Verified bool `json:"verified"`
}

func (r AdminReviewRequest) ToEntity(id int64) entities.Review {
	e := r.ReviewRequest.ToEntity()
	e.ID = id
	e.Verified = r.Verified
	return e
}

type FAQRequest struct {
	Question      string `json:"question" binding:"required"`
	Answer        string `json:"answer" binding:"required"`
	Category      string `json:"category"`
	OrderPosition int    `json:"order_position"`
}

func (r FAQRequest) ToEntity(id int64) entities.FAQ {
	return entities.FAQ{
		ID:            id,
		Question:      r.Question,
		Answer:        r.Answer,
		Category:      r.Category,
		OrderPosition: r.OrderPosition,
	}
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required"`
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type HomepageRequest struct {
	HeroTitle               string   `json:"hero_title" binding:"required"`
	HeroSubtitle            string   `json:"hero_subtitle"`
	HeroBadges              []string `json:"hero_badges"`
	CTAPrimaryText          string   `json:"cta_primary_text"`
	CTASecondaryText        string   `json:"cta_secondary_text"`
	StatDeliveryTime        string   `json:"stat_delivery_time"`
	StatSatisfactionPercent float64  `json:"stat_satisfaction_percent"`
}

func (r HomepageRequest) ToEntity() entities.HomepageSettings {
	return entities.HomepageSettings{
		HeroTitle:               r.HeroTitle,
		HeroSubtitle:            r.HeroSubtitle,
		HeroBadges:              r.HeroBadges,
		CTAPrimaryText:          r.CTAPrimaryText,
		CTASecondaryText:        r.CTASecondaryText,
		StatDeliveryTime:        r.StatDeliveryTime,
		StatSatisfactionPercent: r.StatSatisfactionPercent,
	}
}
