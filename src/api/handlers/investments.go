package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finserver/src/schemas"
	"finserver/src/utils"
)

func (h *Handler) GetInvestments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	investments, err := h.Finance.ListInvestments(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, investments, 200)
}

func (h *Handler) PostInvestment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var createRequest = new(schemas.CreateInvestmentRequest)
	err = json.NewDecoder(r.Body).Decode(createRequest)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	investment, err := h.Finance.CreateInvestment(ctx, userID, createRequest)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, investment, 201)
}

func (h *Handler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Finance.DeleteInvestment(ctx, userID, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
