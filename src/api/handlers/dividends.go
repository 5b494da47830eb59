package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finserver/src/schemas"
	"finserver/src/utils"
)

func (h *Handler) GetDividends(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	dividends, err := h.Finance.ListDividends(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, dividends, 200)
}

func (h *Handler) PostDividend(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var createRequest = new(schemas.CreateDividendRequest)
	err = json.NewDecoder(r.Body).Decode(createRequest)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	dividend, err := h.Finance.CreateDividend(ctx, userID, createRequest)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, dividend, 201)
}

func (h *Handler) DeleteDividend(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Finance.DeleteDividend(ctx, userID, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
