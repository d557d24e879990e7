package models

import (
	"fmt"
	"math/big"
	"time"
)

const (
	BookingIDPrefix = "STEFAN-"

	// HourlyRateCents is the fixed price per booked hour (15,00 €).
	HourlyRateCents = 1500
)

type Booking struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Duration  int       `json:"duration"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// TotalCents is the price of the booking; it is computed, never charged.
// Duration is not range-checked, so the product can exceed int64.
func (b Booking) TotalCents() *big.Int {
	return new(big.Int).Mul(big.NewInt(int64(b.Duration)), big.NewInt(HourlyRateCents))
}

// TotalPrice formats the total with two decimals, e.g. "30.00".
func (b Booking) TotalPrice() string {
	return formatBigCents(b.TotalCents())
}

// TotalEuros is the total as a float for spreadsheet cells.
func (b Booking) TotalEuros() float64 {
	euros, _ := new(big.Float).Quo(new(big.Float).SetInt(b.TotalCents()), big.NewFloat(100)).Float64()
	return euros
}

func FormatCents(cents int64) string {
	return formatBigCents(big.NewInt(cents))
}

func formatBigCents(cents *big.Int) string {
	sign := ""
	if cents.Sign() < 0 {
		sign = "-"
	}
	euros, frac := new(big.Int).QuoRem(new(big.Int).Abs(cents), big.NewInt(100), new(big.Int))
	return fmt.Sprintf("%s%s.%02d", sign, euros.String(), frac.Int64())
}
