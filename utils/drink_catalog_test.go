package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDrinkExactCatalogMatch(t *testing.T) {
	entry := DetectDrink("Stella Artois", "")
	require.NotNil(t, entry)
	assert.Equal(t, "Stella Artois", entry.Name)
	assert.Equal(t, 330.0, entry.VolumeML)
	assert.Equal(t, 5.0, entry.ABVPercentage)
	assert.Equal(t, "beer", entry.Category)
}

func TestDetectDrinkIsCaseInsensitiveAndScansDescription(t *testing.T) {
	entry := DetectDrink("MOJITO MADNESS", "")
	require.NotNil(t, entry)
	assert.Equal(t, "Mojito", entry.Name)

	entry = DetectDrink("House special", "a twist on the classic margarita")
	require.NotNil(t, entry)
	assert.Equal(t, "Margarita", entry.Name)
}

func TestDetectDrinkUnrecognizedReturnsNil(t *testing.T) {
	assert.Nil(t, DetectDrink("Mystery Item", "a delicious snack"))
	assert.Nil(t, DetectDrink("Loaded Fries", "with cheese"))
	assert.Nil(t, DetectDrink("", ""))
}

func TestDetectDrinkWineCategoryFallback(t *testing.T) {
	// no catalog key "house red wine" — resolved by the wine keyword rule
	entry := DetectDrink("House Red Wine", "glass")
	require.NotNil(t, entry)
	assert.Equal(t, "wine", entry.Category)
	assert.Equal(t, 175.0, entry.VolumeML)
	assert.Equal(t, 12.5, entry.ABVPercentage)
}

func TestDetectDrinkWineCocktailPrefersCocktail(t *testing.T) {
	// fallback priority: the wine rule excludes anything containing
	// "cocktail", so the cocktail rule claims it
	entry := DetectDrink("Wine Cocktail", "")
	require.NotNil(t, entry)
	assert.Equal(t, "cocktails", entry.Category)
	assert.Equal(t, 150.0, entry.VolumeML)
	assert.Equal(t, 15.0, entry.ABVPercentage)
}

func TestDetectDrinkBeerAndSpiritFallbacks(t *testing.T) {
	beer := DetectDrink("Hazy Pale Ale", "local craft")
	require.NotNil(t, beer)
	assert.Equal(t, "beer", beer.Category)
	assert.Equal(t, 330.0, beer.VolumeML)
	assert.Equal(t, 4.5, beer.ABVPercentage)

	shot := DetectDrink("Sambuca Shot", "")
	require.NotNil(t, shot)
	assert.Equal(t, "spirits", shot.Category)
	assert.Equal(t, 25.0, shot.VolumeML)
	assert.Equal(t, 40.0, shot.ABVPercentage)
}

func TestDetectDrinkCatalogBeatsFallback(t *testing.T) {
	// "Tequila Sunrise" hits the catalog tequila entry before the
	// cocktail keyword rule could run
	entry := DetectDrink("Tequila Sunrise", "cocktail of the day")
	require.NotNil(t, entry)
	assert.Equal(t, "spirits", entry.Category)
	assert.Equal(t, 38.0, entry.ABVPercentage)
}
