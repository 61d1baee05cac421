package utils

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateSimpleBACMatchesLiveCalculator(t *testing.T) {
	// 70kg, 3 drinks, 2 hours: 42/49 - 0.03 ≈ 0.827
	got, err := EstimateSimpleBAC(3, 70, 2)
	require.NoError(t, err)
	assert.InDelta(t, 42.0/49.0-0.03, got, 1e-12)
}

func TestEstimateSimpleBACDistributionRatioBoundary(t *testing.T) {
	// exactly 60kg uses r=0.6, above uses 0.7
	at60, err := EstimateSimpleBAC(1, 60, 0)
	require.NoError(t, err)
	assert.InDelta(t, 14.0/(60*0.6), at60, 1e-12)

	above60, err := EstimateSimpleBAC(1, 61, 0)
	require.NoError(t, err)
	assert.InDelta(t, 14.0/(61*0.7), above60, 1e-12)
}

func TestEstimateSimpleBACMonotonicInDrinks(t *testing.T) {
	prev := 0.0
	for drinks := 0.0; drinks <= 10; drinks++ {
		bac, err := EstimateSimpleBAC(drinks, 75, 1)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, bac, prev, "more drinks must never lower BAC")
		prev = bac
	}
}

func TestEstimateSimpleBACMonotonicInHoursAndClamped(t *testing.T) {
	prev, err := EstimateSimpleBAC(2, 55, 0)
	require.NoError(t, err)
	for hours := 1.0; hours <= 48; hours++ {
		bac, err := EstimateSimpleBAC(2, 55, hours)
		require.NoError(t, err)
		assert.LessOrEqual(t, bac, prev, "elapsed time must never raise BAC")
		assert.GreaterOrEqual(t, bac, 0.0, "BAC is clamped at zero")
		prev = bac
	}
	assert.Zero(t, prev, "long elapsed time decays to exactly zero")
}

func TestEstimateSimpleBACRejectsNonPositiveWeight(t *testing.T) {
	_, err := EstimateSimpleBAC(3, 0, 1)
	assert.Error(t, err)
	_, err = EstimateSimpleBAC(3, -70, 1)
	assert.Error(t, err)
}

func TestClassifyBoundaries(t *testing.T) {
	thresholds := models.Thresholds{Safe: 0.030, Caution: 0.050, Danger: 0.080}

	assert.Equal(t, StateSafe, Classify(0.0, thresholds))
	assert.Equal(t, StateSafe, Classify(0.029, thresholds))
	assert.Equal(t, StateCaution, Classify(0.030, thresholds), "safe threshold is inclusive for caution")
	assert.Equal(t, StateCaution, Classify(0.079, thresholds))
	assert.Equal(t, StateDanger, Classify(0.080, thresholds), "danger threshold is inclusive")
	assert.Equal(t, StateDanger, Classify(0.5, thresholds))
}

func TestClassifyIsPure(t *testing.T) {
	thresholds := models.Thresholds{Safe: 0.020, Caution: 0.040, Danger: 0.060}
	first := Classify(0.045, thresholds)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify(0.045, thresholds))
	}
}

func TestRecommendationListsAreFixed(t *testing.T) {
	safe := RecommendationsFor(StateSafe)
	assert.Equal(t, []string{
		"Pace yourself",
		"Drink water between drinks",
		"Eat if you haven't",
		"Stay with your group",
		"Keep phone charged",
	}, safe)

	danger := RecommendationsFor(StateDanger)
	require.Len(t, danger, 6)
	assert.Equal(t, "Stop drinking immediately", danger[0])
	assert.Equal(t, "Do not drive", danger[4])
	assert.Equal(t, "Call someone if unwell", danger[5])

	// mutating a returned slice must not leak into the table
	safe[0] = "changed"
	assert.Equal(t, "Pace yourself", RecommendationsFor(StateSafe)[0])
}

func testProfile(weightKg float64) *models.ToleranceProfile {
	p, err := models.NewToleranceProfile(1, weightKg, "male", models.ToleranceModerate, models.Thresholds{}, 0, 0, "")
	if err != nil {
		panic(err)
	}
	return p
}

func drinkAt(grams float64, at time.Time) models.DrinkConsumptionEvent {
	return models.DrinkConsumptionEvent{UserID: 1, AlcoholGrams: grams, ConsumedAt: at}
}

func TestEstimateFromEventsEmptyLedger(t *testing.T) {
	reading, err := EstimateFromEvents(testProfile(70), nil, time.Now())
	require.NoError(t, err)

	assert.Zero(t, reading.CurrentBAC)
	assert.Equal(t, StateSafe, reading.SafetyState)
	assert.Zero(t, reading.DrinksConsumed)
	assert.Equal(t, []string{NoRecentDrinkingMessage}, reading.Recommendations)
	assert.True(t, reading.Known, "a computed zero is known, unlike a missing profile")
}

func TestEstimateFromEventsSumsGramsAndDecays(t *testing.T) {
	now := time.Date(2026, 3, 7, 23, 0, 0, 0, time.UTC)
	events := []models.DrinkConsumptionEvent{
		drinkAt(14, now.Add(-2*time.Hour)),
		drinkAt(14, now.Add(-1*time.Hour)),
		drinkAt(14, now.Add(-30*time.Minute)),
	}

	reading, err := EstimateFromEvents(testProfile(70), events, now)
	require.NoError(t, err)

	// same normalization as the simple formula: 42/(70*0.7) minus two
	// hours of elimination since the first contributing drink
	want := 42.0/(70*0.7) - 0.015*2
	assert.InDelta(t, want, reading.CurrentBAC, 0.001)
	assert.Equal(t, 3, reading.DrinksConsumed)
	assert.Equal(t, 120, reading.MinutesSinceFirstDrink)
	assert.True(t, reading.Known)
}

func TestEstimateFromEventsMonotonicInDrinkCount(t *testing.T) {
	now := time.Now()
	profile := testProfile(80)

	var events []models.DrinkConsumptionEvent
	prev := -1.0
	for i := 0; i < 8; i++ {
		events = append(events, drinkAt(14, now.Add(-time.Hour)))
		reading, err := EstimateFromEvents(profile, events, now)
		require.NoError(t, err)
		assert.Greater(t, reading.CurrentBAC, prev)
		prev = reading.CurrentBAC
	}
}

func TestEstimateFromEventsClampsOldSessions(t *testing.T) {
	now := time.Now()
	events := []models.DrinkConsumptionEvent{
		drinkAt(14, now.Add(-30*time.Hour)),
	}

	reading, err := EstimateFromEvents(testProfile(70), events, now)
	require.NoError(t, err)
	assert.Zero(t, reading.CurrentBAC)
	assert.Equal(t, StateSafe, reading.SafetyState)
}

func TestEstimateFromEventsRejectsBadWeight(t *testing.T) {
	profile := testProfile(70)
	profile.WeightKg = 0

	_, err := EstimateFromEvents(profile, nil, time.Now())
	assert.Error(t, err)
}

func TestUnknownReadingIsDistinguishableFromComputedZero(t *testing.T) {
	unknown := UnknownReading()
	assert.False(t, unknown.Known)
	assert.Equal(t, StateSafe, unknown.SafetyState)
	assert.Equal(t, []string{NoRecentDrinkingMessage}, unknown.Recommendations)

	computed, err := EstimateFromEvents(testProfile(70), nil, time.Now())
	require.NoError(t, err)
	assert.True(t, computed.Known)
	assert.Equal(t, unknown.CurrentBAC, computed.CurrentBAC)
}
