package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finserver/src/schemas"
	"finserver/src/utils"
)

func (h *Handler) GetFinancialGoals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	goals, err := h.Finance.ListFinancialGoals(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, goals, 200)
}

func (h *Handler) PostFinancialGoal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var createRequest = new(schemas.CreateFinancialGoalRequest)
	err = json.NewDecoder(r.Body).Decode(createRequest)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	goal, err := h.Finance.CreateFinancialGoal(ctx, userID, createRequest)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, goal, 201)
}

func (h *Handler) PutGoalProgress(w http.ResponseWriter, r *http.Request) {
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

	var progressRequest = new(schemas.UpdateGoalProgressRequest)
	err = json.NewDecoder(r.Body).Decode(progressRequest)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	if err := h.Finance.UpdateGoalProgress(ctx, userID, id, progressRequest.CurrentAmount); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]float64{"current_amount": progressRequest.CurrentAmount}, 200)
}

func (h *Handler) DeleteFinancialGoal(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Finance.DeleteFinancialGoal(ctx, userID, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
