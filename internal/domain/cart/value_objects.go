package cart

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrUnknownPromoCode = errors.New("unknown promo code")
)

// Fixed allow-list of boutique promo codes. Ratios are multiplicative
// discounts against the raw subtotal.
var promoRatios = map[string]float64{
	"HEAL20":       0.20,
	"ALIGNED":      0.10,
	"NEWCREATION":  0.15,
	"LEENONCHRIST": 0.25,
}

type Promo struct {
	code  string
	ratio float64
}

// LookupPromo normalizes the code (trim + uppercase) and resolves it
// against the allow-list.
func LookupPromo(code string) (Promo, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	ratio, ok := promoRatios[normalized]
	if !ok {
		return Promo{}, ErrUnknownPromoCode
	}
	return Promo{code: normalized, ratio: ratio}, nil
}

func (p Promo) Code() string   { return p.code }
func (p Promo) Ratio() float64 { return p.ratio }

// applyRatio discounts a cent amount multiplicatively, rounded to the cent.
func applyRatio(cents int64, ratio float64) int64 {
	if ratio <= 0 {
		return cents
	}
	return int64(math.Round(float64(cents) * (1 - ratio)))
}
