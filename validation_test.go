package warehouse

import (
	"errors"
	"testing"
)

func TestValidatePhone(t *testing.T) {
	testCases := []struct {
		in      string
		wantErr bool
	}{
		{in: "05321234567"},
		{in: "0532123456", wantErr: true},   // 10 digits
		{in: "053212345678", wantErr: true}, // 12 digits
		{in: "0532123456a", wantErr: true},
		{in: "+0532123456", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		err := validatePhone(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("validatePhone(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		in      string
		wantErr bool
	}{
		{in: "ayse@example.com"},
		{in: "a@b.co"},
		{in: "no-at-sign.com", wantErr: true},
		{in: "spaces in@example.com", wantErr: true},
		{in: "missing@tld", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		err := validateEmail(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("validateEmail(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
	}
}

func TestValidateName(t *testing.T) {
	testCases := []struct {
		in      string
		wantErr bool
	}{
		{in: "Ayşe Kaya"},
		{in: "Bo"},
		{in: "A", wantErr: true},       // single rune
		{in: "Ali 3rd", wantErr: true}, // digits are not allowed
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		err := validateName(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("validateName(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
	}
}

func TestValidateContact(t *testing.T) {
	// A contact follows the same 11-digit rule as a phone number.
	if err := validateContact("05321234567"); err != nil {
		t.Errorf("validateContact(phone) unexpected error: %v", err)
	}
	if err := validateContact("ali@example.com"); err == nil {
		t.Errorf("validateContact(email) expected an error")
	}
}

func TestValidateShippingInfo(t *testing.T) {
	if err := validateShippingInfo("Çark Cd. 12, Sakarya"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validateShippingInfo("too short"); err == nil {
		t.Errorf("expected an error for a 9-rune address")
	}
}

func TestValidateOrderQuantity(t *testing.T) {
	if err := validateOrderQuantity(1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, n := range []int{0, -3} {
		err := validateOrderQuantity(n)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("validateOrderQuantity(%d) = %v, want a ValidationError", n, err)
		}
	}
}
