package services

import (
	"fmt"

	"github.com/RachitaModiTR/PlanPoker/internal/models"
)

// Deck presets
const (
	DeckFibonacci   = "fibonacci"
	DeckTShirt      = "t-shirt"
	DeckPowersOfTwo = "powers-of-two"
)

var deckPresets = map[string][]string{
	DeckFibonacci:   {"0", "1", "2", "3", "5", "8", "13", "21", "?", "coffee"},
	DeckTShirt:      {"XS", "S", "M", "L", "XL", "?", "coffee"},
	DeckPowersOfTwo: {"0", "1", "2", "4", "8", "16", "32", "64", "?", "coffee"},
}

// DeckValidator validates vote values against a session's card deck.
type DeckValidator struct{}

func NewDeckValidator() *DeckValidator {
	return &DeckValidator{}
}

// ValidateVoteValue checks that a vote value is one of the session's
// cards. The special values "?" and "coffee" are always allowed.
func (v *DeckValidator) ValidateVoteValue(value models.VoteValue, deck []string) error {
	if value.IsZero() {
		return fmt.Errorf("vote value cannot be empty")
	}
	if value == models.VoteUnknown || value == models.VoteCoffee {
		return nil
	}
	for _, card := range deck {
		if string(value) == card {
			return nil
		}
	}
	return fmt.Errorf("value %q is not in the session deck", string(value))
}

// PresetDeck returns the card list for a preset name.
func (v *DeckValidator) PresetDeck(name string) ([]string, error) {
	preset, ok := deckPresets[name]
	if !ok {
		return nil, fmt.Errorf("unknown deck preset: %s", name)
	}
	deck := make([]string, len(preset))
	copy(deck, preset)
	return deck, nil
}
