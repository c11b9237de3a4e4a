package domain

import "fmt"

// Suggestion is one candidate result offered to the user. The ID is opaque
// and only guaranteed unique within a single result set; the Label is both
// the display text and the value committed into the input.
type Suggestion struct {
	ID    string
	Label string
}

// Currency is one currency a country uses, keyed by its ISO-ish code in
// the dataset's currency map.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CountryName holds the naming variants the dataset exposes. Only the
// common name is used here.
type CountryName struct {
	Common string `json:"common"`
}

// Country is one record of the remote reference dataset.
type Country struct {
	Flag       string              `json:"flag"`
	Name       CountryName         `json:"name"`
	Currencies map[string]Currency `json:"currencies"`
}

// SuggestionLabel formats the fixed display label for one currency of a
// country: "<flag> <currency name> (<currency symbol>)".
func SuggestionLabel(c Country, cur Currency) string {
	return fmt.Sprintf("%s %s (%s)", c.Flag, cur.Name, cur.Symbol)
}
