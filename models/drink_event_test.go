package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDrinkConsumptionEventDerivesAlcoholGrams(t *testing.T) {
	at := time.Date(2026, 3, 7, 22, 30, 0, 0, time.UTC)
	ev, err := NewDrinkConsumptionEvent(3, nil, "Stella Artois", 330, 5.0, at, true, 40)
	require.NoError(t, err)

	// 330ml * 5% * 0.789 g/ml
	assert.InDelta(t, 330*0.05*EthanolDensityGPerML, ev.AlcoholGrams, 1e-9)
	assert.Equal(t, at, ev.ConsumedAt)
	assert.True(t, ev.FoodRecently)
	assert.Equal(t, 40, ev.MinutesSinceFood)
}

func TestNewDrinkConsumptionEventStampsNow(t *testing.T) {
	before := time.Now()
	ev, err := NewDrinkConsumptionEvent(3, nil, "Merlot", 175, 13.5, time.Time{}, false, 0)
	require.NoError(t, err)

	assert.False(t, ev.ConsumedAt.Before(before))
	assert.False(t, ev.ConsumedAt.After(time.Now()))
}

func TestNewDrinkConsumptionEventRejectsZeroVolume(t *testing.T) {
	ev, err := NewDrinkConsumptionEvent(3, nil, "Ghost Pint", 0, 5.0, time.Time{}, false, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, ev, "a rejected event is never constructed, so it can never reach the ledger")
}

func TestNewDrinkConsumptionEventRejectsOutOfRangeABV(t *testing.T) {
	_, err := NewDrinkConsumptionEvent(3, nil, "Overproof", 25, 101, time.Time{}, false, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewDrinkConsumptionEvent(3, nil, "Negative", 25, -1, time.Time{}, false, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewDrinkConsumptionEventAllowsZeroABV(t *testing.T) {
	ev, err := NewDrinkConsumptionEvent(3, nil, "Alcohol-free lager", 330, 0, time.Time{}, false, 0)
	require.NoError(t, err)
	assert.Zero(t, ev.AlcoholGrams)
}
