package request

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"obsydia_retail/internal/domain/intake"
)

func TestOrderRequestFromForm(t *testing.T) {
	form := url.Values{
		"fullName":   {"Ana"},
		"email":      {"ana@example.com"},
		"services":   {"jellyfin"},
		"services[]": {"immich"},
		"language":   {"es"},
	}

	got := OrderRequestFromForm(form).ToPayload()
	want := intake.OrderPayload{
		FullName: "Ana",
		Email:    "ana@example.com",
		Phone:    "",
		Address:  "",
		Location: "",
		Notes:    "",
		Services: []string{"jellyfin", "immich"},
		Language: "es",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestQuoteRequest_ToForm(t *testing.T) {
	r := QuoteRequest{
		PC:           "100",
		ExtraStorage: "5",
		Notes:        "n",
		OtherLabels:  []string{"Cable"},
		OtherAmounts: []string{"3"},
	}
	want := intake.QuoteForm{
		PC:           "100",
		ExtraStorage: "5",
		Notes:        "n",
		OtherLabels:  []string{"Cable"},
		OtherAmounts: []string{"3"},
	}
	if diff := cmp.Diff(want, r.ToForm()); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}
