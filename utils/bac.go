package utils

import (
	"errors"
	"math"
	"time"

	"backend/models"
)

// SafetyState categorizes how risky the current estimate is.
type SafetyState string

const (
	StateSafe    SafetyState = "safe"
	StateCaution SafetyState = "caution"
	StateDanger  SafetyState = "danger"
)

// GramsPerStandardDrink follows the UK unit convention used by the live
// preview calculator: one standard drink ≈ 14g of pure alcohol.
const GramsPerStandardDrink = 14.0

// NoRecentDrinkingMessage is returned when the lookback window is empty.
const NoRecentDrinkingMessage = "No recent drinking detected"

// BACReading is the engine's point-in-time output, handed to the
// presentation/notification layer.
type BACReading struct {
	CurrentBAC             float64     `json:"current_bac"`
	SafetyState            SafetyState `json:"safety_state"`
	DrinksConsumed         int         `json:"drinks_consumed"`
	MinutesSinceFirstDrink int         `json:"minutes_since_first_drink"`
	Recommendations        []string    `json:"recommendations"`
	// Known distinguishes a computed value (including a computed 0) from
	// "no profile yet, BAC unknown" — an unknown BAC is not a safety
	// guarantee the way a measured 0 is.
	Known bool `json:"known"`
}

// Fixed recommendation lists per state.
var recommendationsByState = map[SafetyState][]string{
	StateSafe: {
		"Pace yourself",
		"Drink water between drinks",
		"Eat if you haven't",
		"Stay with your group",
		"Keep phone charged",
	},
	StateCaution: {
		"Slow down",
		"Drink a large glass of water now",
		"Order food",
		"Consider switching to non-alcoholic",
		"Check in with friends",
	},
	StateDanger: {
		"Stop drinking immediately",
		"Drink water and eat if possible",
		"Stay with trusted friends",
		"Consider leaving",
		"Do not drive",
		"Call someone if unwell",
	},
}

// RecommendationsFor returns a copy of the fixed advice list for a state.
func RecommendationsFor(state SafetyState) []string {
	recs := recommendationsByState[state]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}

// Classify maps a BAC value onto the categorical state. Only the safe and
// danger boundaries change the state; the caution threshold subdivides the
// UI's visual ramp.
func Classify(bac float64, t models.Thresholds) SafetyState {
	switch {
	case bac >= t.Danger:
		return StateDanger
	case bac >= t.Safe:
		return StateCaution
	default:
		return StateSafe
	}
}

// distributionRatio is the weight-based Widmark r used by the live
// calculator. Sex-adjusted refinements may narrow this later.
func distributionRatio(weightKg float64) float64 {
	if weightKg > 60 {
		return 0.7
	}
	return 0.6
}

// EstimateSimpleBAC reproduces the live preview calculator verbatim:
//
//	BAC = drinks*14/(weight*r) - 0.015*hours, clamped at 0
//
// The result is a simplified unitless risk score, not a true %BAC — the
// arithmetic is kept exactly for parity with the calculator.
func EstimateSimpleBAC(drinks, weightKg, hoursElapsed float64) (float64, error) {
	if weightKg <= 0 {
		return 0, errors.New("weight must be positive")
	}
	if drinks < 0 {
		return 0, errors.New("drinks cannot be negative")
	}
	if hoursElapsed < 0 {
		hoursElapsed = 0
	}

	r := distributionRatio(weightKg)
	bac := (drinks*GramsPerStandardDrink)/(weightKg*r) - models.DefaultEliminationRate*hoursElapsed
	return math.Max(0, bac), nil
}

// EstimateFromEvents computes a reading from the full recent ledger. Total
// alcohol grams feed the same normalization as the simple formula, with the
// profile's elimination rate applied over the hours since the first
// contributing drink. The food_consumed_recently flag on events is carried
// for display but does not alter the coefficients; the source calculator
// never used it in the calculation path and parity wins over speculation.
func EstimateFromEvents(profile *models.ToleranceProfile, events []models.DrinkConsumptionEvent, now time.Time) (*BACReading, error) {
	if profile == nil {
		return nil, errors.New("profile is required")
	}
	if profile.WeightKg <= 0 {
		return nil, errors.New("weight must be positive")
	}

	if len(events) == 0 {
		return &BACReading{
			CurrentBAC:      0,
			SafetyState:     StateSafe,
			Recommendations: []string{NoRecentDrinkingMessage},
			Known:           true,
		}, nil
	}

	var totalGrams float64
	first := events[0].ConsumedAt
	for _, ev := range events {
		totalGrams += ev.AlcoholGrams
		if ev.ConsumedAt.Before(first) {
			first = ev.ConsumedAt
		}
	}

	hours := now.Sub(first).Hours()
	if hours < 0 {
		hours = 0
	}

	rate := profile.EliminationRate
	if rate <= 0 {
		rate = models.DefaultEliminationRate
	}

	r := distributionRatio(profile.WeightKg)
	bac := totalGrams/(profile.WeightKg*r) - rate*hours
	bac = math.Max(0, bac)

	state := Classify(bac, profile.Thresholds())
	return &BACReading{
		CurrentBAC:             round3(bac),
		SafetyState:            state,
		DrinksConsumed:         len(events),
		MinutesSinceFirstDrink: int(now.Sub(first).Minutes()),
		Recommendations:        RecommendationsFor(state),
		Known:                  true,
	}, nil
}

// UnknownReading is the answer for a user with no profile: BAC cannot be
// computed, which must stay visually distinguishable from a computed 0.
func UnknownReading() *BACReading {
	return &BACReading{
		CurrentBAC:      0,
		SafetyState:     StateSafe,
		Recommendations: []string{NoRecentDrinkingMessage},
		Known:           false,
	}
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
