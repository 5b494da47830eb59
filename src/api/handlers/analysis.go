package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finserver/src/schemas"
	"finserver/src/utils"
)

func (h *Handler) decodeImageRequest(w http.ResponseWriter, r *http.Request) (*schemas.AnalyzeImageRequest, string, bool) {
	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return nil, "", false
	}

	var imageRequest = new(schemas.AnalyzeImageRequest)
	err = json.NewDecoder(r.Body).Decode(imageRequest)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return nil, "", false
	}
	return imageRequest, userID, true
}

func (h *Handler) PostAnalyzeReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	imageRequest, _, ok := h.decodeImageRequest(w, r)
	if !ok {
		return
	}

	result, err := h.Analyzer.AnalyzeReceipt(ctx, imageRequest)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, result, 200)
}

func (h *Handler) PostAnalyzeStockTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	imageRequest, _, ok := h.decodeImageRequest(w, r)
	if !ok {
		return
	}

	result, err := h.Analyzer.AnalyzeStockTransaction(ctx, imageRequest)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, result, 200)
}

func (h *Handler) PostAnalyzeCryptoTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	imageRequest, _, ok := h.decodeImageRequest(w, r)
	if !ok {
		return
	}

	result, err := h.Analyzer.AnalyzeCryptoTransaction(ctx, imageRequest)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, result, 200)
}
