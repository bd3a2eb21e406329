// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskFlow Authors

package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/utils"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

const telegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// telegramWebhook always answers 200 so that Telegram never redelivers.
// Unreadable updates and updates failing the secret check are "ignored".
func (h *Handler) telegramWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !h.webhookSecretMatches(r) {
		log.Warn().Msg("telegram webhook secret mismatch")
		utils.WriteJSON(w, models.StatusResponse{Status: models.WebhookStatusIgnored}, http.StatusOK)
		return
	}

	var update models.TelegramUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Debug().Err(err).Msg("unreadable telegram update")
		utils.WriteJSON(w, models.StatusResponse{Status: models.WebhookStatusIgnored}, http.StatusOK)
		return
	}

	status := h.services.WebhookService.HandleUpdate(r.Context(), &update)
	utils.WriteJSON(w, models.StatusResponse{Status: status}, http.StatusOK)
}

func (h *Handler) webhookSecretMatches(r *http.Request) bool {
	if h.webhookSecret == "" {
		return true
	}
	got := r.Header.Get(telegramSecretHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.webhookSecret)) == 1
}
