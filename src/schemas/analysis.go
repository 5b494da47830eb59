package schemas

// AnalyzeImageRequest carries an uploaded image as base64 plus its declared
// MIME type.
type AnalyzeImageRequest struct {
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

type ReceiptAnalysis struct {
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
}

type StockTransactionAnalysis struct {
	Ticker string  `json:"ticker"`
	Shares float64 `json:"shares"`
	Price  float64 `json:"price"`
	Date   string  `json:"date"`
}

type CryptoTransactionAnalysis struct {
	Coin   string  `json:"coin"`
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
	Price  float64 `json:"price"`
	Date   string  `json:"date"`
}
