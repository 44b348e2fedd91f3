package service_test

import (
	"testing"

	"github.com/0xsj/overwatch-accounts/internal/app/service"
)

func TestKnownCurrency(t *testing.T) {
	known := []string{"USD", "GBP", "EUR", "JPY", "NGN"}
	for _, code := range known {
		if !service.KnownCurrency(code) {
			t.Errorf("KnownCurrency(%q) = false, want true", code)
		}
	}

	unknown := []string{"", "ZZZ", "BTC1", "US"}
	for _, code := range unknown {
		if service.KnownCurrency(code) {
			t.Errorf("KnownCurrency(%q) = true, want false", code)
		}
	}
}
