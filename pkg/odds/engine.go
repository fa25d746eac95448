// Package odds prices event options from the live distribution of bets.
//
// The rule is inverse popularity, not a normalized probability market:
// an option holding b of T bets pays T/b, and an option nobody has backed
// pays the larger of its initial odds and 2*T. The resulting vector does
// not sum to any fixed overround.
package odds

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits odds are kept at
const Places int32 = 2

var untouchedMultiplier = decimal.NewFromInt(2)

// ErrInvalidInput is returned when the bet distribution cannot describe a real market
var ErrInvalidInput = errors.New("invalid odds input")

// ErrNonPositiveOdds is returned when a computed price is not strictly positive
var ErrNonPositiveOdds = errors.New("non-positive odds")

// Recompute returns the odds vector for a market with totalBets bets spread
// as perOptionBets over options priced initially at initialOdds.
//
// With no bets at all the initial odds are returned unchanged.
func Recompute(totalBets int, perOptionBets []int, initialOdds []decimal.Decimal) ([]decimal.Decimal, error) {
	if len(perOptionBets) != len(initialOdds) {
		return nil, fmt.Errorf("%w: %d bet counts for %d options", ErrInvalidInput, len(perOptionBets), len(initialOdds))
	}
	if totalBets < 0 {
		return nil, fmt.Errorf("%w: negative total %d", ErrInvalidInput, totalBets)
	}

	sum := 0
	for i, b := range perOptionBets {
		if b < 0 {
			return nil, fmt.Errorf("%w: negative bet count %d for option %d", ErrInvalidInput, b, i)
		}
		sum += b
	}
	if sum != totalBets {
		return nil, fmt.Errorf("%w: option bets sum to %d, total is %d", ErrInvalidInput, sum, totalBets)
	}

	result := make([]decimal.Decimal, len(initialOdds))
	total := decimal.NewFromInt(int64(totalBets))

	for i, initial := range initialOdds {
		b := perOptionBets[i]
		switch {
		case totalBets == 0:
			result[i] = initial
		case b > 0:
			result[i] = total.DivRound(decimal.NewFromInt(int64(b)), Places)
		default:
			result[i] = decimal.Max(initial, total.Mul(untouchedMultiplier)).Round(Places)
		}

		if !result[i].IsPositive() {
			return nil, fmt.Errorf("%w: option %d priced at %s", ErrNonPositiveOdds, i, result[i].StringFixed(Places))
		}
	}

	return result, nil
}

// Normalize rounds a price to Places digits, half away from zero
func Normalize(price decimal.Decimal) decimal.Decimal {
	return price.Round(Places)
}
