package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"watchparty/internal/delivery/http/helpers"
	"watchparty/internal/domain"
)

type ChatController struct {
	Logger  *slog.Logger
	Service domain.ChatService
}

func NewChatController(logger *slog.Logger, svc domain.ChatService) *ChatController {
	return &ChatController{Logger: logger, Service: svc}
}

// HistoryRequest is the request body for POST /api/messages.
type HistoryRequest struct {
	Code string `json:"code"`
}

// HistoryResponse is the response body for POST /api/messages.
type HistoryResponse struct {
	Messages []*domain.ChatMessage `json:"messages"`
}

// History godoc
// @Summary Fetch recent chat history
// @Description Returns up to 100 most recent messages, oldest-first. Requires a valid invitation code.
// @Tags chat
// @Accept json
// @Produce json
// @Param body body HistoryRequest true "Invitation code"
// @Success 200 {object} HistoryResponse
// @Failure 403 {object} helpers.APIError "error.code: forbidden"
// @Failure 500 {object} helpers.APIError "error.code: internal_error"
// @Router /api/messages [post]
func (c *ChatController) History(w http.ResponseWriter, r *http.Request) {
	var req HistoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	msgs, err := c.Service.History(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "Invalid code.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "failed to fetch chat history", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, HistoryResponse{Messages: msgs})
}

// SendRequest is the request body for POST /api/chat-send.
type SendRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Validate implements helpers.Validator.
func (s SendRequest) Validate() []string {
	if strings.TrimSpace(s.Code) == "" || strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Content) == "" {
		return []string{"Missing required fields."}
	}
	return nil
}

// SendResponse is the response body for POST /api/chat-send.
type SendResponse struct {
	Success bool `json:"success"`
}

// Send godoc
// @Summary Post a chat message
// @Description Persists the message to the bounded log and broadcasts it to everyone currently in the chamber.
// @Tags chat
// @Accept json
// @Produce json
// @Param body body SendRequest true "Invitation code, display name, message content"
// @Success 200 {object} SendResponse
// @Failure 400 {object} helpers.APIError "error.code: bad_request"
// @Failure 403 {object} helpers.APIError "error.code: forbidden"
// @Failure 500 {object} helpers.APIError "error.code: internal_error"
// @Router /api/chat-send [post]
func (c *ChatController) Send(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	if _, err := c.Service.Post(r.Context(), req.Code, req.Name, req.Content); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "Invalid invitation code.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Missing required fields.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "failed to post chat message", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SendResponse{Success: true})
}
