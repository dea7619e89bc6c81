package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/JohnCGriffin/overflow"
	"github.com/shopspring/decimal"
)

type InvalidNumberError struct {
	Number string
}

func (e InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number %q", e.Number)
}

type InvalidCurrencyCodeError struct {
	CurrencyCode CurrencyCode
}

func (e InvalidCurrencyCodeError) Error() string {
	return fmt.Sprintf("invalid currency code %q", e.CurrencyCode)
}

var (
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
)

type Amount struct {
	// Expressed in minor units. To get the "real" number, shift right by the number of digits of the currency.
	Number       int64
	CurrencyCode CurrencyCode
}

func NewAmountFromInt64(n int64, currencyCode CurrencyCode) (Amount, error) {
	_, ok := GetDigits(currencyCode)
	if !ok {
		return Amount{}, InvalidCurrencyCodeError{currencyCode}
	}
	return Amount{n, currencyCode}, nil
}

// NewAmountFromString parses a decimal such as "549.99" into minor units.
// Values carrying more decimals than the currency allows are rejected, not rounded.
func NewAmountFromString(s string, currencyCode CurrencyCode) (Amount, error) {
	digits, ok := GetDigits(currencyCode)
	if !ok {
		return Amount{}, InvalidCurrencyCodeError{currencyCode}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, InvalidNumberError{s}
	}
	minor := d.Shift(int32(digits))
	if !minor.IsInteger() || minor.LessThan(minMinorUnits) || minor.GreaterThan(maxMinorUnits) {
		return Amount{}, InvalidNumberError{s}
	}
	return Amount{minor.IntPart(), currencyCode}, nil
}

func ZeroAmount(currencyCode CurrencyCode) Amount {
	return Amount{Number: 0, CurrencyCode: currencyCode}
}

func (a Amount) Add(b Amount) (Amount, bool) {
	if a.CurrencyCode != b.CurrencyCode {
		return Amount{}, false
	}
	sum, ok := overflow.Add64(a.Number, b.Number)
	if !ok {
		return Amount{}, false
	}
	return Amount{Number: sum, CurrencyCode: a.CurrencyCode}, ok
}

func (a Amount) Sub(b Amount) (Amount, bool) {
	if a.CurrencyCode != b.CurrencyCode {
		return Amount{}, false
	}
	diff, ok := overflow.Sub64(a.Number, b.Number)
	if !ok {
		return Amount{}, false
	}
	return Amount{Number: diff, CurrencyCode: a.CurrencyCode}, ok
}

func (a Amount) Mul(n int64) (Amount, bool) {
	product, ok := overflow.Mul64(a.Number, n)
	if !ok {
		return Amount{}, false
	}
	return Amount{Number: product, CurrencyCode: a.CurrencyCode}, ok
}

func (a Amount) IsNegative() bool {
	return a.Number < 0
}

func (a Amount) IsZero() bool {
	return a.Number == 0
}

// Decimal returns the amount in major units, e.g. 249.00 for 24900 USD minor units.
func (a Amount) Decimal() decimal.Decimal {
	digits, _ := GetDigits(a.CurrencyCode)
	return decimal.New(a.Number, -int32(digits))
}

// String renders exactly as many decimals as the currency has digits.
func (a Amount) String() string {
	digits, ok := GetDigits(a.CurrencyCode)
	if !ok {
		return strconv.FormatInt(a.Number, 10)
	}
	return a.Decimal().StringFixed(int32(digits))
}

// Format prefixes the currency symbol, "$249.00" or "-$5.00".
func (a Amount) Format() string {
	symbol := GetSymbol(a.CurrencyCode)
	if a.IsNegative() {
		abs := a.Decimal().Neg()
		digits, _ := GetDigits(a.CurrencyCode)
		return "-" + symbol + abs.StringFixed(int32(digits))
	}
	return symbol + a.String()
}

type TotalAmount struct {
	Total Amount
	Ok    bool
}

func NewTotalAmount(currencyCode CurrencyCode) TotalAmount {
	return TotalAmount{Total: ZeroAmount(currencyCode), Ok: true}
}

func (total *TotalAmount) Add(amount Amount) {
	if total.Ok {
		total.Total, total.Ok = total.Total.Add(amount)
	}
}

func (total *TotalAmount) Sub(amount Amount) {
	if total.Ok {
		total.Total, total.Ok = total.Total.Sub(amount)
	}
}
