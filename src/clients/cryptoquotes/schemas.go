package cryptoquotes

// SimplePriceResponse maps coin id -> currency -> unit price.
type SimplePriceResponse map[string]map[string]float64

// Coin describes one supported coin in the symbol -> provider-id mapping.
type Coin struct {
	Symbol string `json:"symbol"`
	ID     string `json:"id"`
	Name   string `json:"name"`
}
