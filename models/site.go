package models

type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type FeatureFlags struct {
	ChatWidget     bool `json:"chatWidget"`
	Analytics      bool `json:"analytics"`
	ErrorReporting bool `json:"errorReporting"`
}

type MobileMoneyLimits struct {
	MinAmount float64 `json:"minAmount"`
	MaxAmount float64 `json:"maxAmount"`
}

// SiteConfig is the runtime configuration the front end needs.
type SiteConfig struct {
	Name             string            `json:"name"`
	Contact          ContactInfo       `json:"contact"`
	Features         FeatureFlags      `json:"features"`
	Currency         string            `json:"currency"`
	MobileMoney      MobileMoneyLimits `json:"mobileMoney"`
	TourTimes        []string          `json:"tourTimes"`
	MaxTourGroupSize int               `json:"maxTourGroupSize"`
	MaxMessageLength int               `json:"maxMessageLength"`
}

// ═══════════════════════════════════════════════════════════
// Outbound forms
// ═══════════════════════════════════════════════════════════

type ContactForm struct {
	Name    string `json:"name" form:"name" validate:"notblank,person_name" example:"Jane Wanjiru"`
	Email   string `json:"email" form:"email" validate:"notblank,email" example:"jane@example.com"`
	Phone   string `json:"phone,omitempty" form:"phone" validate:"kenyan_phone" example:"0712345678"`
	Subject string `json:"subject" form:"subject" validate:"notblank" example:"Bulk order"`
	Message string `json:"message" form:"message" validate:"notblank,min=10,max=500" example:"I would like to order 200 layer chicks."`
}

type TourBooking struct {
	Name      string `json:"name" form:"name" validate:"notblank,person_name" example:"Jane Wanjiru"`
	Email     string `json:"email" form:"email" validate:"notblank,email" example:"jane@example.com"`
	Phone     string `json:"phone" form:"phone" validate:"notblank,kenyan_phone" example:"0712345678"`
	Date      string `json:"date" form:"date" validate:"notblank,future_date" example:"2026-11-02"`
	Time      string `json:"time" form:"time" validate:"notblank,oneof=10:00 14:00" example:"10:00"`
	GroupSize int    `json:"groupSize" form:"groupSize" validate:"min=1,max=10" example:"4"`
	Message   string `json:"message,omitempty" form:"message" validate:"max=500"`
}
