package controllers

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"finserver/src/clients/aigateway"
	"finserver/src/schemas"
	"finserver/src/utils"
)

// MaxImageBytes caps decoded upload size at 10MB.
const MaxImageBytes = 10 * 1024 * 1024

// MaxExtractedAmount bounds any money amount the model may report.
const MaxExtractedAmount = 1e9

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type AnalyzerControllerI interface {
	AnalyzeReceipt(ctx context.Context, req *schemas.AnalyzeImageRequest) (*schemas.ReceiptAnalysis, error)
	AnalyzeStockTransaction(ctx context.Context, req *schemas.AnalyzeImageRequest) (*schemas.StockTransactionAnalysis, error)
	AnalyzeCryptoTransaction(ctx context.Context, req *schemas.AnalyzeImageRequest) (*schemas.CryptoTransactionAnalysis, error)
}

type AnalyzerController struct {
	AIClient aigateway.AIGatewayClientI
}

func NewAnalyzerController(aiClient aigateway.AIGatewayClientI) *AnalyzerController {
	return &AnalyzerController{AIClient: aiClient}
}

// ValidateImagePayload checks the declared MIME type against the allow-list
// and the decoded byte size against the 10MB ceiling.
func ValidateImagePayload(req *schemas.AnalyzeImageRequest) error {
	if req.ImageBase64 == "" {
		return utils.BadRequest("image_base64 must not be empty")
	}
	if !allowedMimeTypes[strings.ToLower(req.MimeType)] {
		return utils.BadRequest(fmt.Sprintf("unsupported image type %q, expected jpeg, png or webp", req.MimeType))
	}

	decoded, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return utils.BadRequest("image_base64 is not valid base64 data")
	}
	if len(decoded) > MaxImageBytes {
		return utils.BadRequest(fmt.Sprintf("image is too large (%d bytes), maximum is %d", len(decoded), MaxImageBytes))
	}
	return nil
}

// analyze runs the shared pipeline: validate the payload, prompt the model,
// extract the first JSON object from the reply, then bounds-check via verify.
func (c *AnalyzerController) analyze(ctx context.Context, req *schemas.AnalyzeImageRequest, prompt string, target interface{}, verify func() error) error {
	if err := ValidateImagePayload(req); err != nil {
		return err
	}

	reply, err := c.AIClient.AnalyzeImage(ctx, prompt, strings.ToLower(req.MimeType), req.ImageBase64)
	if err != nil {
		return err
	}

	if err := utils.ExtractFirstJSONObject(reply, target); err != nil {
		return utils.BadGateway("could not parse analysis result from AI response")
	}
	if err := verify(); err != nil {
		return err
	}
	return nil
}

func validAmount(amount float64) bool {
	return amount >= 0 && amount <= MaxExtractedAmount
}

func (c *AnalyzerController) AnalyzeReceipt(ctx context.Context, req *schemas.AnalyzeImageRequest) (*schemas.ReceiptAnalysis, error) {
	var result schemas.ReceiptAnalysis
	err := c.analyze(ctx, req, ReceiptPrompt, &result, func() error {
		if result.Merchant == "" {
			return utils.BadRequest("could not identify a merchant on the receipt")
		}
		if !validAmount(result.Amount) {
			return utils.BadRequest(fmt.Sprintf("extracted amount %v is out of range", result.Amount))
		}
		if !utils.IsValidShortDate(result.Date) {
			return utils.BadRequest(fmt.Sprintf("extracted date %q is not a valid YYYY-MM-DD date", result.Date))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *AnalyzerController) AnalyzeStockTransaction(ctx context.Context, req *schemas.AnalyzeImageRequest) (*schemas.StockTransactionAnalysis, error) {
	var result schemas.StockTransactionAnalysis
	err := c.analyze(ctx, req, StockTransactionPrompt, &result, func() error {
		if result.Ticker == "" {
			return utils.BadRequest("could not identify a ticker in the transaction")
		}
		if result.Shares <= 0 {
			return utils.BadRequest(fmt.Sprintf("extracted share count %v is out of range", result.Shares))
		}
		if !validAmount(result.Price) {
			return utils.BadRequest(fmt.Sprintf("extracted price %v is out of range", result.Price))
		}
		if !utils.IsValidShortDate(result.Date) {
			return utils.BadRequest(fmt.Sprintf("extracted date %q is not a valid YYYY-MM-DD date", result.Date))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Ticker = strings.ToUpper(result.Ticker)
	return &result, nil
}

func (c *AnalyzerController) AnalyzeCryptoTransaction(ctx context.Context, req *schemas.AnalyzeImageRequest) (*schemas.CryptoTransactionAnalysis, error) {
	var result schemas.CryptoTransactionAnalysis
	err := c.analyze(ctx, req, CryptoTransactionPrompt, &result, func() error {
		if result.Coin == "" || result.Symbol == "" {
			return utils.BadRequest("could not identify the coin in the transaction")
		}
		if result.Amount <= 0 {
			return utils.BadRequest(fmt.Sprintf("extracted coin amount %v is out of range", result.Amount))
		}
		if !validAmount(result.Price) {
			return utils.BadRequest(fmt.Sprintf("extracted price %v is out of range", result.Price))
		}
		if !utils.IsValidShortDate(result.Date) {
			return utils.BadRequest(fmt.Sprintf("extracted date %q is not a valid YYYY-MM-DD date", result.Date))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Symbol = strings.ToUpper(result.Symbol)
	return &result, nil
}
