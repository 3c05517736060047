package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"watchparty/internal/delivery/http/helpers"
	"watchparty/internal/domain"
)

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
	Admin   domain.AdminVerifier
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService, admin domain.AdminVerifier) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
		Admin:   admin,
	}
}

// IssueRequest is the request body for POST /api/invite.
type IssueRequest struct {
	AdminKey  string `json:"adminKey"`
	Email     string `json:"email"`
	GuestName string `json:"guestName"`
}

// IssueResponse is the response body for POST /api/invite.
type IssueResponse struct {
	Success   bool   `json:"success"`
	Code      string `json:"code"`
	EmailSent bool   `json:"emailSent"`
	Message   string `json:"message"`
}

// Issue godoc
// @Summary Issue a new invitation (admin)
// @Description Creates an invitation with a fresh code and attempts to email it to the guest. Email failure is non-fatal and reported via emailSent.
// @Tags invitations
// @Accept json
// @Produce json
// @Param body body IssueRequest true "Admin key, guest email, optional guest name"
// @Success 200 {object} IssueResponse
// @Failure 400 {object} helpers.APIError "error.code: bad_request"
// @Failure 403 {object} helpers.APIError "error.code: forbidden"
// @Failure 500 {object} helpers.APIError "error.code: internal_error"
// @Router /api/invite [post]
func (c *InvitationController) Issue(w http.ResponseWriter, r *http.Request) {
	var req IssueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Admin.Verify(req.AdminKey); err != nil {
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "Incorrect admin key, darling. The Queen does not approve.")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "An email address is required to send a royal invitation.")
		return
	}

	res, err := c.Service.Issue(r.Context(), req.Email, req.GuestName)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "failed to issue invitation", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "Failed to create invitation.")
		return
	}

	message := fmt.Sprintf("Invitation created with code %s (email not configured — share the code manually).", res.Invitation.Code)
	if res.EmailSent {
		message = fmt.Sprintf("Invitation sent to %s with code %s!", res.Invitation.Email, res.Invitation.Code)
	}
	helpers.WriteJSON(w, http.StatusOK, IssueResponse{
		Success:   true,
		Code:      res.Invitation.Code,
		EmailSent: res.EmailSent,
		Message:   message,
	})
}

// ListRequest is the request body for POST /api/invitations.
type ListRequest struct {
	AdminKey string `json:"adminKey"`
}

// ListResponse is the response body for POST /api/invitations.
type ListResponse struct {
	Invitations []*domain.Invitation `json:"invitations"`
}

// List godoc
// @Summary List all invitations (admin)
// @Tags invitations
// @Accept json
// @Produce json
// @Param body body ListRequest true "Admin key"
// @Success 200 {object} ListResponse
// @Failure 403 {object} helpers.APIError "error.code: forbidden"
// @Failure 500 {object} helpers.APIError "error.code: internal_error"
// @Router /api/invitations [post]
func (c *InvitationController) List(w http.ResponseWriter, r *http.Request) {
	var req ListRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Admin.Verify(req.AdminKey); err != nil {
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "Unauthorized.")
		return
	}

	invs, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "failed to list invitations", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListResponse{Invitations: invs})
}

// ValidateCodeRequest is the request body for POST /api/validate-code.
type ValidateCodeRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Validate implements helpers.Validator.
func (v ValidateCodeRequest) Validate() []string {
	if strings.TrimSpace(v.Code) == "" || strings.TrimSpace(v.Name) == "" {
		return []string{"Both your name and invitation code are required."}
	}
	return nil
}

// ValidateCodeResponse is the response body for POST /api/validate-code.
type ValidateCodeResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidateCode godoc
// @Summary Validate an invitation code
// @Description Checks the code (case-insensitive) and marks it used on first success. Validation is idempotent: an already-used code still succeeds.
// @Tags invitations
// @Accept json
// @Produce json
// @Param body body ValidateCodeRequest true "Invitation code and guest name"
// @Success 200 {object} ValidateCodeResponse
// @Failure 400 {object} helpers.APIError "error.code: bad_request"
// @Failure 404 {object} helpers.APIError "error.code: not_found"
// @Failure 500 {object} helpers.APIError "error.code: internal_error"
// @Router /api/validate-code [post]
func (c *InvitationController) ValidateCode(w http.ResponseWriter, r *http.Request) {
	var req ValidateCodeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	inv, err := c.Service.Validate(r.Context(), req.Code, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvitationNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "This invitation code is not recognized by the court. Check your letter again, darling.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "failed to validate code", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	name := strings.TrimSpace(req.Name)
	helpers.WriteJSON(w, http.StatusOK, ValidateCodeResponse{
		Success: true,
		Name:    name,
		Code:    inv.Code,
		Message: fmt.Sprintf("Welcome to the Queen's Chamber, %s! 👑", name),
	})
}
