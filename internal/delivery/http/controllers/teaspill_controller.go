package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"watchparty/internal/delivery/http/helpers"
	"watchparty/internal/domain"
)

type TeaSpillController struct {
	Logger  *slog.Logger
	Service domain.TeaSpillService
}

func NewTeaSpillController(logger *slog.Logger, svc domain.TeaSpillService) *TeaSpillController {
	return &TeaSpillController{Logger: logger, Service: svc}
}

// TeaSpillListResponse is the response body for GET /api/teaspill.
type TeaSpillListResponse struct {
	Entries []*domain.TeaSpill `json:"entries"`
}

// Get godoc
// @Summary List tea spills
// @Description Returns up to 200 anonymous gossip entries, newest-first.
// @Tags teaspill
// @Produce json
// @Success 200 {object} TeaSpillListResponse
// @Failure 500 {object} helpers.APIError "error.code: internal_error"
// @Router /api/teaspill [get]
func (c *TeaSpillController) Get(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "failed to list tea spills", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, TeaSpillListResponse{Entries: entries})
}

// TeaSpillPostRequest is the request body for POST /api/teaspill.
type TeaSpillPostRequest struct {
	Content string `json:"content"`
	Alias   string `json:"alias"`
}

// TeaSpillPostResponse is the response body for POST /api/teaspill.
type TeaSpillPostResponse struct {
	Success bool             `json:"success"`
	Entry   *domain.TeaSpill `json:"entry"`
}

// Post godoc
// @Summary Spill some tea
// @Description Adds an anonymous gossip entry. Content must be 1-500 characters after trimming.
// @Tags teaspill
// @Accept json
// @Produce json
// @Param body body TeaSpillPostRequest true "Gossip content and optional alias"
// @Success 200 {object} TeaSpillPostResponse
// @Failure 400 {object} helpers.APIError "error.code: bad_request"
// @Failure 500 {object} helpers.APIError "error.code: internal_error"
// @Router /api/teaspill [post]
func (c *TeaSpillController) Post(w http.ResponseWriter, r *http.Request) {
	var req TeaSpillPostRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	entry, err := c.Service.Post(r.Context(), req.Content, req.Alias)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, teaSpillErrorMessage(req.Content))
			return
		}
		c.Logger.ErrorContext(r.Context(), "failed to save tea spill", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, TeaSpillPostResponse{Success: true, Entry: entry})
}

func teaSpillErrorMessage(content string) string {
	if len([]rune(content)) > domain.TeaSpillMaxContent {
		return "Even Lady Whistledown keeps her columns under 500 characters."
	}
	return "One cannot spill empty tea, darling."
}
