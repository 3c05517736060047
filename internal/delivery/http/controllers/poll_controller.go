package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"watchparty/internal/delivery/http/helpers"
	"watchparty/internal/domain"
)

type PollController struct {
	Logger  *slog.Logger
	Service domain.PollService
}

func NewPollController(logger *slog.Logger, svc domain.PollService) *PollController {
	return &PollController{Logger: logger, Service: svc}
}

// PollsResponse is the response body for GET and POST /api/polls.
type PollsResponse struct {
	Success bool           `json:"success,omitempty"`
	Polls   []*domain.Poll `json:"polls"`
}

// Get godoc
// @Summary List all polls
// @Tags polls
// @Produce json
// @Success 200 {object} PollsResponse
// @Failure 500 {object} helpers.APIError "error.code: internal_error"
// @Router /api/polls [get]
func (c *PollController) Get(w http.ResponseWriter, r *http.Request) {
	polls, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "failed to list polls", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, PollsResponse{Polls: polls})
}

// VoteRequest is the request body for POST /api/polls. OptionIndex is a
// pointer so a missing field can be told apart from index zero.
type VoteRequest struct {
	PollID      string `json:"pollId"`
	OptionIndex *int   `json:"optionIndex"`
}

// Vote godoc
// @Summary Cast a vote
// @Description Increments exactly one option counter of the given poll.
// @Tags polls
// @Accept json
// @Produce json
// @Param body body VoteRequest true "Poll id and option index"
// @Success 200 {object} PollsResponse
// @Failure 400 {object} helpers.APIError "error.code: bad_request"
// @Failure 500 {object} helpers.APIError "error.code: internal_error"
// @Router /api/polls [post]
func (c *PollController) Vote(w http.ResponseWriter, r *http.Request) {
	var req VoteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if req.PollID == "" || req.OptionIndex == nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Missing pollId or optionIndex.")
		return
	}

	polls, err := c.Service.Vote(r.Context(), req.PollID, *req.OptionIndex)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Invalid poll or option.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "failed to record vote", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, PollsResponse{Success: true, Polls: polls})
}
