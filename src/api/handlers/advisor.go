package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finserver/src/schemas"
	"finserver/src/utils"
)

func (h *Handler) PostAdvisorChat(w http.ResponseWriter, r *http.Request) {
	// Chat crosses the database plus up to four external providers, so it
	// gets a longer budget than the CRUD endpoints.
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var chatRequest = new(schemas.ChatRequest)
	err = json.NewDecoder(r.Body).Decode(chatRequest)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	chatResponse, err := h.Advisor.Chat(ctx, userID, chatRequest)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, chatResponse, 200)
}

func (h *Handler) GetNetWorth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	netWorth, err := h.Advisor.NetWorth(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, netWorth, 200)
}
