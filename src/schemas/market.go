package schemas

type StockPricesRequest struct {
	Symbols []string `json:"symbols"`
}

type StockPricesResponse struct {
	Prices           map[string]float64 `json:"prices"`
	SymbolsRequested int                `json:"symbols_requested"`
	SymbolsFound     int                `json:"symbols_found"`
}

type CryptoPricesRequest struct {
	Symbols []string `json:"symbols"`
}

type CryptoPricesResponse struct {
	Prices           map[string]float64 `json:"prices"`
	SymbolsRequested int                `json:"symbols_requested"`
	SymbolsFound     int                `json:"symbols_found"`
}

type ExchangeRateResponse struct {
	Rate   float64 `json:"rate"`
	Source string  `json:"source"`
}

type StockListEntry struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type StockListResponse struct {
	Stocks []StockListEntry `json:"stocks"`
}

type CryptoListEntry struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type CryptoListResponse struct {
	Coins []CryptoListEntry `json:"coins"`
}
