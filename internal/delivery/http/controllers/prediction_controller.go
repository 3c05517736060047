package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"watchparty/internal/delivery/http/helpers"
	"watchparty/internal/domain"
)

type PredictionController struct {
	Logger  *slog.Logger
	Service domain.PredictionService
}

func NewPredictionController(logger *slog.Logger, svc domain.PredictionService) *PredictionController {
	return &PredictionController{Logger: logger, Service: svc}
}

// PredictionListResponse is the response body for GET /api/predictions.
type PredictionListResponse struct {
	Predictions []*domain.Prediction `json:"predictions"`
}

// Get godoc
// @Summary List predictions
// @Description Returns up to 200 finale predictions, newest-first.
// @Tags predictions
// @Produce json
// @Success 200 {object} PredictionListResponse
// @Failure 500 {object} helpers.APIError "error.code: internal_error"
// @Router /api/predictions [get]
func (c *PredictionController) Get(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "failed to list predictions", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, PredictionListResponse{Predictions: entries})
}

// PredictionPostRequest is the request body for POST /api/predictions.
type PredictionPostRequest struct {
	Name       string `json:"name"`
	Prediction string `json:"prediction"`
	Category   string `json:"category"`
}

// PredictionPostResponse is the response body for POST /api/predictions.
type PredictionPostResponse struct {
	Success bool               `json:"success"`
	Entry   *domain.Prediction `json:"entry"`
}

// Post godoc
// @Summary Record a prediction
// @Tags predictions
// @Accept json
// @Produce json
// @Param body body PredictionPostRequest true "Prediction with optional name and category"
// @Success 200 {object} PredictionPostResponse
// @Failure 400 {object} helpers.APIError "error.code: bad_request"
// @Failure 500 {object} helpers.APIError "error.code: internal_error"
// @Router /api/predictions [post]
func (c *PredictionController) Post(w http.ResponseWriter, r *http.Request) {
	var req PredictionPostRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	entry, err := c.Service.Post(r.Context(), req.Name, req.Prediction, req.Category)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "A prediction is required, Your Grace.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "failed to save prediction", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, PredictionPostResponse{Success: true, Entry: entry})
}
