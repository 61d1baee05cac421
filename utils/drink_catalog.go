package utils

import "strings"

// DrinkCatalogEntry maps a recognizable lowercase search key to default
// serving values. Process-wide immutable reference data, loaded at start.
type DrinkCatalogEntry struct {
	Key           string  `json:"-"`
	Name          string  `json:"name"`
	VolumeML      float64 `json:"volume_ml"`
	ABVPercentage float64 `json:"abv_percentage"`
	Category      string  `json:"category"` // "beer" | "spirits" | "cocktails" | "wine"
}

// drinkCatalog is scanned in declaration order; the first key that is a
// substring of the search text wins, so more specific names sit above
// generic ones.
var drinkCatalog = []DrinkCatalogEntry{
	// beers
	{Key: "stella artois", Name: "Stella Artois", VolumeML: 330, ABVPercentage: 5.0, Category: "beer"},
	{Key: "heineken", Name: "Heineken", VolumeML: 330, ABVPercentage: 5.0, Category: "beer"},
	{Key: "corona", Name: "Corona Extra", VolumeML: 330, ABVPercentage: 4.5, Category: "beer"},
	{Key: "guinness", Name: "Guinness", VolumeML: 568, ABVPercentage: 4.2, Category: "beer"},
	{Key: "peroni", Name: "Peroni Nastro Azzurro", VolumeML: 330, ABVPercentage: 5.1, Category: "beer"},
	{Key: "budweiser", Name: "Budweiser", VolumeML: 330, ABVPercentage: 4.5, Category: "beer"},
	{Key: "desperados", Name: "Desperados", VolumeML: 330, ABVPercentage: 5.9, Category: "beer"},
	// spirits (single measures)
	{Key: "vodka", Name: "Vodka", VolumeML: 25, ABVPercentage: 40.0, Category: "spirits"},
	{Key: "whiskey", Name: "Whiskey", VolumeML: 25, ABVPercentage: 40.0, Category: "spirits"},
	{Key: "whisky", Name: "Whisky", VolumeML: 25, ABVPercentage: 40.0, Category: "spirits"},
	{Key: "tequila", Name: "Tequila", VolumeML: 25, ABVPercentage: 38.0, Category: "spirits"},
	{Key: "jagermeister", Name: "Jägermeister", VolumeML: 25, ABVPercentage: 35.0, Category: "spirits"},
	{Key: "rum", Name: "Rum", VolumeML: 25, ABVPercentage: 40.0, Category: "spirits"},
	{Key: "gin", Name: "Gin", VolumeML: 25, ABVPercentage: 40.0, Category: "spirits"},
	// cocktails
	{Key: "mojito", Name: "Mojito", VolumeML: 250, ABVPercentage: 10.0, Category: "cocktails"},
	{Key: "margarita", Name: "Margarita", VolumeML: 200, ABVPercentage: 17.0, Category: "cocktails"},
	{Key: "espresso martini", Name: "Espresso Martini", VolumeML: 150, ABVPercentage: 15.0, Category: "cocktails"},
	{Key: "pina colada", Name: "Piña Colada", VolumeML: 250, ABVPercentage: 10.0, Category: "cocktails"},
	{Key: "long island", Name: "Long Island Iced Tea", VolumeML: 250, ABVPercentage: 22.0, Category: "cocktails"},
	{Key: "cosmopolitan", Name: "Cosmopolitan", VolumeML: 150, ABVPercentage: 20.0, Category: "cocktails"},
	// wines
	{Key: "prosecco", Name: "Prosecco", VolumeML: 125, ABVPercentage: 11.0, Category: "wine"},
	{Key: "champagne", Name: "Champagne", VolumeML: 125, ABVPercentage: 12.0, Category: "wine"},
	{Key: "merlot", Name: "Merlot", VolumeML: 175, ABVPercentage: 13.5, Category: "wine"},
	{Key: "sauvignon blanc", Name: "Sauvignon Blanc", VolumeML: 175, ABVPercentage: 12.5, Category: "wine"},
	{Key: "pinot grigio", Name: "Pinot Grigio", VolumeML: 175, ABVPercentage: 12.0, Category: "wine"},
	{Key: "chardonnay", Name: "Chardonnay", VolumeML: 175, ABVPercentage: 13.0, Category: "wine"},
	{Key: "malbec", Name: "Malbec", VolumeML: 175, ABVPercentage: 13.5, Category: "wine"},
}

// Category fallback defaults when no catalog key matches.
var (
	beerDefault     = DrinkCatalogEntry{Name: "Beer", VolumeML: 330, ABVPercentage: 4.5, Category: "beer"}
	wineDefault     = DrinkCatalogEntry{Name: "Wine", VolumeML: 175, ABVPercentage: 12.5, Category: "wine"}
	cocktailDefault = DrinkCatalogEntry{Name: "Cocktail", VolumeML: 150, ABVPercentage: 15.0, Category: "cocktails"}
	spiritDefault   = DrinkCatalogEntry{Name: "Spirit", VolumeML: 25, ABVPercentage: 40.0, Category: "spirits"}
)

var spiritKeywords = []string{"shot", "vodka", "gin", "rum", "whiskey", "whisky", "tequila", "brandy", "liqueur"}

// DetectDrink maps a free-text menu item to a catalog entry. Priority is
// fixed: catalog keys in declaration order first, then category keyword
// fallbacks (beer, wine-not-cocktail, cocktail, spirits). Returns nil for
// unrecognized items — callers must not log a drink event for those.
func DetectDrink(itemName, itemDescription string) *DrinkCatalogEntry {
	text := strings.ToLower(itemName + " " + itemDescription)

	for i := range drinkCatalog {
		if strings.Contains(text, drinkCatalog[i].Key) {
			entry := drinkCatalog[i]
			return &entry
		}
	}

	switch {
	case containsAny(text, "beer", "lager", "ale"):
		entry := beerDefault
		entry.Name = itemName
		return &entry
	case strings.Contains(text, "wine") && !strings.Contains(text, "cocktail"):
		entry := wineDefault
		entry.Name = itemName
		return &entry
	case containsAny(text, "cocktail", "martini", "mojito"):
		entry := cocktailDefault
		entry.Name = itemName
		return &entry
	case containsAny(text, spiritKeywords...):
		entry := spiritDefault
		entry.Name = itemName
		return &entry
	}

	return nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
