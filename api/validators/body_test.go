package validators

import (
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
)

type samplePayload struct {
	Name   string `json:"name" validate:"required"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
	Email  string `json:"email" validate:"omitempty,email"`
}

func TestDecodeJSONBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Chocolate Truffle","rating":5}`))
	var payload samplePayload
	if err := DecodeJSONBody(r, &payload); err != nil {
		t.Fatalf("DecodeJSONBody: %v", err)
	}
	if payload.Name != "Chocolate Truffle" || payload.Rating != 5 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"x","rating":3,"extra":true}`))
	var payload samplePayload
	err := DecodeJSONBody(r, &payload)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyFieldMessages(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"rating":9,"email":"nope"}`))
	var payload samplePayload
	err := DecodeJSONBody(r, &payload)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := appErr.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected string detail map, got %T", appErr.Details())
	}
	if details["name"] != "is required" {
		t.Fatalf("unexpected name message %q", details["name"])
	}
	if details["rating"] != "must be 5 or less" {
		t.Fatalf("unexpected rating message %q", details["rating"])
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message %q", details["email"])
	}
}

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/?limit=30", nil)
	value, err := ParseQueryInt(r, "limit", 20, 1, 100)
	if err != nil || value != 30 {
		t.Fatalf("expected 30, got %d (%v)", value, err)
	}

	r = httptest.NewRequest("GET", "/", nil)
	if value, _ = ParseQueryInt(r, "limit", 20, 1, 100); value != 20 {
		t.Fatalf("expected default 20, got %d", value)
	}

	r = httptest.NewRequest("GET", "/?limit=abc", nil)
	if _, err = ParseQueryInt(r, "limit", 20, 1, 100); pkgerrors.As(err) == nil {
		t.Fatal("expected error for non-numeric value")
	}

	r = httptest.NewRequest("GET", "/?limit=500", nil)
	if _, err = ParseQueryInt(r, "limit", 20, 1, 100); pkgerrors.As(err) == nil {
		t.Fatal("expected error for out-of-range value")
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello  ", 0); got != "hello" {
		t.Fatalf("unexpected %q", got)
	}
	if got := SanitizeString("abcdef", 3); got != "abc" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestSanitizeStringKeepsRunesWhole(t *testing.T) {
	address := "१२ एमजी रोड"
	if got := SanitizeString(address, 4); got != "१२ ए" {
		t.Fatalf("unexpected %q", got)
	}
	if got := SanitizeString(address, 100); got != address {
		t.Fatalf("unexpected %q", got)
	}
	if got := SanitizeString("दिल्ली", 3); !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
}
