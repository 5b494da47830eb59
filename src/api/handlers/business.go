package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finserver/src/schemas"
	"finserver/src/utils"
)

func (h *Handler) GetBusinessFinances(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	finances, err := h.Finance.ListBusinessFinances(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, finances, 200)
}

func (h *Handler) PostBusinessFinance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var createRequest = new(schemas.CreateBusinessFinanceRequest)
	err = json.NewDecoder(r.Body).Decode(createRequest)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	finance, err := h.Finance.CreateBusinessFinance(ctx, userID, createRequest)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, finance, 201)
}

func (h *Handler) DeleteBusinessFinance(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Finance.DeleteBusinessFinance(ctx, userID, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
