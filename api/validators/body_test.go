package validators

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	pkgerrors "github.com/ers220/component-compass/pkg/errors"
)

type loginBody struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"u1@tuks.co.za","password":"secret123"}`))

	var body loginBody
	if err := DecodeJSONBody(req, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Email != "u1@tuks.co.za" {
		t.Fatalf("unexpected email %q", body.Email)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"u1@tuks.co.za","password":"x","extra":1}`))

	var body loginBody
	err := DecodeJSONBody(req, &body)
	if err == nil {
		t.Fatalf("expected unknown field to be rejected")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", pkgerrors.As(err).Code())
	}
}

func TestDecodeJSONBodyValidationDetails(t *testing.T) {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"not-an-email"}`))

	var body loginBody
	err := DecodeJSONBody(req, &body)
	if err == nil {
		t.Fatalf("expected validation failure")
	}

	typed := pkgerrors.As(err)
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email detail %q", details["email"])
	}
	if details["password"] != "is required" {
		t.Fatalf("unexpected password detail %q", details["password"])
	}
}

func TestDecodeFormValid(t *testing.T) {
	form := url.Values{"email": {"u1@tuks.co.za"}, "password": {"secret123"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var body loginBody
	if err := DecodeForm(req, &body); err != nil {
		t.Fatalf("decode form: %v", err)
	}
	if body.Password != "secret123" {
		t.Fatalf("unexpected password %q", body.Password)
	}
}

func TestDecodeFormMissingFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/login", strings.NewReader("email=u1%40tuks.co.za"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var body loginBody
	err := DecodeForm(req, &body)
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code")
	}
}
