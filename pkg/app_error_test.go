package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected error string: %q", e.Error())
	}
	got := e.ToHTTPError()
	if got.Code != "INTERNAL_ERROR" || got.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", got)
	}

	simple := NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	if simple.Unwrap() != nil || simple.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
	if simple.Error() != "ORDER_NOT_FOUND: Order not found" {
		t.Fatalf("unexpected error string: %q", simple.Error())
	}
}
