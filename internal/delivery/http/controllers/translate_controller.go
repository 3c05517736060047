package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"watchparty/internal/delivery/http/helpers"
	"watchparty/internal/domain"
)

type TranslateController struct {
	Logger  *slog.Logger
	Service domain.TranslateService
}

func NewTranslateController(logger *slog.Logger, svc domain.TranslateService) *TranslateController {
	return &TranslateController{Logger: logger, Service: svc}
}

// TranslateRequest is the request body for POST /api/translate.
type TranslateRequest struct {
	Text string `json:"text"`
}

// TranslateResponse is the response body for POST /api/translate.
type TranslateResponse struct {
	Translated string `json:"translated"`
}

// Translate godoc
// @Summary Rewrite text in Regency-era style
// @Description Sends the text to the upstream completion service with a
// @Description Lady Whistledown persona and returns the rewritten version.
// @Tags translate
// @Accept json
// @Produce json
// @Param body body TranslateRequest true "Modern text to rewrite"
// @Success 200 {object} TranslateResponse
// @Failure 400 {object} helpers.APIError "error.code: bad_request"
// @Failure 500 {object} helpers.APIError "error.code: internal_error"
// @Router /api/translate [post]
func (c *TranslateController) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	translated, err := c.Service.Translate(r.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Please provide text to translate, darling.")
		case errors.Is(err, domain.ErrTranslatorUnconfigured):
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "The royal translator is on holiday. Do try again when the season resumes.")
		case errors.Is(err, domain.ErrUpstream):
			c.Logger.ErrorContext(r.Context(), "translator upstream failure", "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "The royal translator encountered a most vexing error.")
		default:
			c.Logger.ErrorContext(r.Context(), "failed to translate text", "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, TranslateResponse{Translated: translated})
}
