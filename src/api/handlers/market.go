package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finserver/src/schemas"
	"finserver/src/utils"
)

func (h *Handler) PostStockPrices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var pricesRequest = new(schemas.StockPricesRequest)
	err := json.NewDecoder(r.Body).Decode(pricesRequest)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	prices, err := h.Market.GetStockPrices(ctx, pricesRequest.Symbols)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, prices, 200)
}

func (h *Handler) GetStockList(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.Market.GetStockList(r.Context()), 200)
}

func (h *Handler) PostCryptoPrices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var pricesRequest = new(schemas.CryptoPricesRequest)
	err := json.NewDecoder(r.Body).Decode(pricesRequest)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	prices, err := h.Market.GetCryptoPrices(ctx, pricesRequest.Symbols)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, prices, 200)
}

func (h *Handler) GetCryptoList(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.Market.GetCryptoList(r.Context()), 200)
}

func (h *Handler) GetExchangeRate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	h.respond(w, r, h.Market.GetExchangeRate(ctx), 200)
}
