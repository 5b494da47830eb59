package aigateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finserver/src/clients/aigateway"
	"finserver/src/utils"
	"finserver/src/utils/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *aigateway.AIGatewayClient {
	return &aigateway.AIGatewayClient{
		API:     requests.NewExternalAPIService(),
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "google/gemini-2.5-flash",
	}
}

func gatewayReply(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"role": "assistant", "content": content}},
		},
	}
}

func TestCreateChatCompletion(t *testing.T) {
	var capturedRequest aigateway.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&capturedRequest))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gatewayReply("Halo, ada yang bisa saya bantu?"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	reply, err := client.CreateChatCompletion(context.Background(), []aigateway.ChatMessage{
		{Role: "user", Content: "Halo"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Halo, ada yang bisa saya bantu?", reply)
	assert.Equal(t, "google/gemini-2.5-flash", capturedRequest.Model)
	require.Len(t, capturedRequest.Messages, 1)
}

func TestCreateChatCompletionRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateChatCompletion(context.Background(), nil)
	require.Error(t, err)

	httpErr, ok := err.(*utils.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
}

func TestCreateChatCompletionQuotaExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateChatCompletion(context.Background(), nil)
	require.Error(t, err)

	httpErr, ok := err.(*utils.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusPaymentRequired, httpErr.Code)
}

func TestCreateChatCompletionUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateChatCompletion(context.Background(), nil)
	require.Error(t, err)

	httpErr, ok := err.(*utils.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
}

func TestCreateChatCompletionEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateChatCompletion(context.Background(), nil)
	require.Error(t, err)

	httpErr, ok := err.(*utils.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
}

func TestAnalyzeImageBuildsDataURL(t *testing.T) {
	var capturedRequest aigateway.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&capturedRequest))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gatewayReply(`{"merchant": "Alfamart"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.AnalyzeImage(context.Background(), "Extract the receipt.", "image/png", "aGVsbG8=")
	require.NoError(t, err)

	require.Len(t, capturedRequest.Messages, 1)
	parts, err := json.Marshal(capturedRequest.Messages[0].Content)
	require.NoError(t, err)
	assert.Contains(t, string(parts), "data:image/png;base64,aGVsbG8=")
	assert.Contains(t, string(parts), "Extract the receipt.")
}
