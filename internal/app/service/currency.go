package service

import (
	"golang.org/x/text/currency"
)

// KnownCurrency reports whether code is a recognized ISO 4217 currency code.
func KnownCurrency(code string) bool {
	_, err := currency.ParseISO(code)
	return err == nil
}
