package request

import (
	"net/url"

	"obsydia_retail/internal/domain/intake"
)

// OrderRequest is the public order form. Fields are untyped on purpose:
// the intake sanitizer decides what a usable value is.
type OrderRequest struct {
	FullName any `json:"fullName"`
	Email    any `json:"email"`
	Phone    any `json:"phone"`
	Address  any `json:"address"`
	Location any `json:"location"`
	Notes    any `json:"notes"`
	Services any `json:"services"`
	Language any `json:"language"`
}

// OrderRequestFromForm reads an urlencoded or multipart form. Services may
// be sent as repeated "services" or "services[]" fields.
func OrderRequestFromForm(form url.Values) OrderRequest {
	services := append(append([]string{}, form["services"]...), form["services[]"]...)
	r := OrderRequest{
		FullName: form.Get("fullName"),
		Email:    form.Get("email"),
		Phone:    form.Get("phone"),
		Address:  form.Get("address"),
		Location: form.Get("location"),
		Notes:    form.Get("notes"),
		Services: services,
		Language: form.Get("language"),
	}
	return r
}

func (r OrderRequest) ToPayload() intake.OrderPayload {
	return intake.OrderPayload{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		Location: r.Location,
		Notes:    r.Notes,
		Services: r.Services,
		Language: r.Language,
	}
}
