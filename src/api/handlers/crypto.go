package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finserver/src/schemas"
	"finserver/src/utils"
)

func (h *Handler) GetCryptoHoldings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	holdings, err := h.Finance.ListCryptoHoldings(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, holdings, 200)
}

func (h *Handler) PostCryptoHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var createRequest = new(schemas.CreateCryptoHoldingRequest)
	err = json.NewDecoder(r.Body).Decode(createRequest)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	holding, err := h.Finance.CreateCryptoHolding(ctx, userID, createRequest)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, holding, 201)
}

func (h *Handler) DeleteCryptoHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Finance.DeleteCryptoHolding(ctx, userID, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
