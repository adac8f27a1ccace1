package request

import "obsydia_retail/internal/domain/intake"

// QuoteRequest is the admin price sheet, posted as a form or as JSON.
// Amounts stay strings so blank and malformed input reach the calculator.
type QuoteRequest struct {
	PC             string   `json:"pc" form:"pc"`
	Jellyfin       string   `json:"jellyfin" form:"jellyfin"`
	Immich         string   `json:"immich" form:"immich"`
	Kavita         string   `json:"kavita" form:"kavita"`
	Audiobookshelf string   `json:"audiobookshelf" form:"audiobookshelf"`
	ExtraStorage   string   `json:"extra-storage" form:"extra-storage"`
	Notes          string   `json:"quoteNotes" form:"quoteNotes"`
	OtherLabels    []string `json:"otherLabel" form:"otherLabel[]"`
	OtherAmounts   []string `json:"otherAmount" form:"otherAmount[]"`
}

func (r QuoteRequest) ToForm() intake.QuoteForm {
	return intake.QuoteForm{
		PC:             r.PC,
		Jellyfin:       r.Jellyfin,
		Immich:         r.Immich,
		Kavita:         r.Kavita,
		Audiobookshelf: r.Audiobookshelf,
		ExtraStorage:   r.ExtraStorage,
		Notes:          r.Notes,
		OtherLabels:    r.OtherLabels,
		OtherAmounts:   r.OtherAmounts,
	}
}

type AdminLoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
