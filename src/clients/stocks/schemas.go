package stocks

// GlobalQuoteResponse mirrors the provider's GLOBAL_QUOTE payload. Field keys
// carry the provider's numeric prefixes.
type GlobalQuoteResponse struct {
	GlobalQuote struct {
		Symbol        string `json:"01. symbol"`
		Price         string `json:"05. price"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
	Note string `json:"Note"`
}
