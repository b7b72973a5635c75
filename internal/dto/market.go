package dto

// Listing is a static market-data entry for the stocks and crypto screens.
type Listing struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	Volume    string  `json:"volume"`
	MarketCap string  `json:"marketCap"`
}

type MarketListingsResponse struct {
	Listings []Listing `json:"listings"`
	Total    int       `json:"total"`
}
