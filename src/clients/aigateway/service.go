package aigateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"finserver/src/config"
	"finserver/src/utils"
	"finserver/src/utils/requests"
)

type AIGatewayClientI interface {
	CreateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error)
	AnalyzeImage(ctx context.Context, instruction, mimeType, base64Data string) (string, error)
}

type AIGatewayClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
	APIKey  string
	Model   string
}

// NewClient creates a new instance of AIGatewayClient
func NewClient(cfg *config.Config) *AIGatewayClient {
	api := requests.NewExternalAPIService()
	return &AIGatewayClient{
		API:     api,
		BaseURL: cfg.ExternalClients.AIGateway.BaseURL,
		APIKey:  cfg.ExternalClients.AIGateway.APIKey,
		Model:   cfg.ExternalClients.AIGateway.Model,
	}
}

// CreateChatCompletion sends the conversation to the gateway and returns the
// assistant's reply text. Gateway billing and rate-limit statuses are mapped
// to user-facing errors; any other non-2xx is a bad gateway.
func (c *AIGatewayClient) CreateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error) {
	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)

	body := ChatCompletionRequest{
		Model:    c.Model,
		Messages: messages,
	}

	resp, err := c.API.Post(ctx, endpoint, c.APIKey, nil, body)
	if err != nil {
		return "", utils.BadGateway("AI service is unreachable, please try again later")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", utils.TooManyRequests("AI service is busy, please try again in a moment")
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", utils.PaymentRequired("AI usage quota exhausted, please check your workspace billing")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", utils.BadGateway(fmt.Sprintf("AI service returned status %d", resp.StatusCode))
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var completion ChatCompletionResponse
	err = json.Unmarshal(responseBody, &completion)
	if err != nil {
		return "", err
	}

	if completion.Error != nil {
		return "", utils.BadGateway(completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", utils.BadGateway("AI service returned an empty response")
	}
	return completion.Choices[0].Message.Content, nil
}

// AnalyzeImage sends an inline base64 image with a task instruction to the
// gateway's multimodal endpoint and returns the raw reply text.
func (c *AIGatewayClient) AnalyzeImage(ctx context.Context, instruction, mimeType, base64Data string) (string, error) {
	messages := []ChatMessage{
		{
			Role: "user",
			Content: []ContentPart{
				{Type: "text", Text: instruction},
				{Type: "image_url", ImageURL: &ImageURL{
					URL: fmt.Sprintf("data:%s;base64,%s", mimeType, base64Data),
				}},
			},
		},
	}
	return c.CreateChatCompletion(ctx, messages)
}
