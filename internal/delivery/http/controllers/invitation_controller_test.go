package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchparty/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeAdminVerifier implements domain.AdminVerifier for handler tests.
type fakeAdminVerifier struct {
	key string
}

func (f *fakeAdminVerifier) Verify(key string) error {
	if key != f.key {
		return domain.ErrForbidden
	}
	return nil
}

// fakeInvitationService implements domain.InvitationService for handler tests.
type fakeInvitationService struct {
	issueResult *domain.IssueResult
	issueErr    error
	invitations []*domain.Invitation
	listErr     error
	byCode      map[string]*domain.Invitation
	validateErr error
}

func (f *fakeInvitationService) Issue(ctx context.Context, email, guestName string) (*domain.IssueResult, error) {
	if f.issueErr != nil {
		return nil, f.issueErr
	}
	return f.issueResult, nil
}

func (f *fakeInvitationService) List(ctx context.Context) ([]*domain.Invitation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.invitations, nil
}

func (f *fakeInvitationService) Lookup(ctx context.Context, code string) (*domain.Invitation, error) {
	if inv, ok := f.byCode[domain.NormalizeCode(code)]; ok {
		return inv, nil
	}
	return nil, domain.ErrInvitationNotFound
}

func (f *fakeInvitationService) Validate(ctx context.Context, code, name string) (*domain.Invitation, error) {
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	inv, err := f.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	inv.Used = true
	return inv, nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, rec, &body)
	return body.Error.Code
}

func TestInvitationController_Issue(t *testing.T) {
	admin := &fakeAdminVerifier{key: "secret"}

	t.Run("wrong admin key", func(t *testing.T) {
		ctrl := NewInvitationController(testLogger(), &fakeInvitationService{}, admin)
		rec := postJSON(t, ctrl.Issue, "/api/invite", IssueRequest{AdminKey: "wrong", Email: "a@x.com"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "forbidden", errorCode(t, rec))
		assert.Contains(t, rec.Body.String(), "The Queen does not approve")
	})

	t.Run("missing email", func(t *testing.T) {
		ctrl := NewInvitationController(testLogger(), &fakeInvitationService{}, admin)
		rec := postJSON(t, ctrl.Issue, "/api/invite", IssueRequest{AdminKey: "secret"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", errorCode(t, rec))
	})

	t.Run("success with email sent", func(t *testing.T) {
		svc := &fakeInvitationService{issueResult: &domain.IssueResult{
			Invitation: &domain.Invitation{Code: "AB12CD34", Email: "a@x.com"},
			EmailSent:  true,
		}}
		ctrl := NewInvitationController(testLogger(), svc, admin)
		rec := postJSON(t, ctrl.Issue, "/api/invite", IssueRequest{AdminKey: "secret", Email: "a@x.com"})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp IssueResponse
		decodeBody(t, rec, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "AB12CD34", resp.Code)
		assert.True(t, resp.EmailSent)
		assert.Contains(t, resp.Message, "Invitation sent to a@x.com")
	})

	t.Run("success without email", func(t *testing.T) {
		svc := &fakeInvitationService{issueResult: &domain.IssueResult{
			Invitation: &domain.Invitation{Code: "AB12CD34", Email: "a@x.com"},
		}}
		ctrl := NewInvitationController(testLogger(), svc, admin)
		rec := postJSON(t, ctrl.Issue, "/api/invite", IssueRequest{AdminKey: "secret", Email: "a@x.com"})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp IssueResponse
		decodeBody(t, rec, &resp)
		assert.False(t, resp.EmailSent)
		assert.Contains(t, resp.Message, "share the code manually")
	})
}

func TestInvitationController_List(t *testing.T) {
	admin := &fakeAdminVerifier{key: "secret"}

	t.Run("wrong admin key", func(t *testing.T) {
		ctrl := NewInvitationController(testLogger(), &fakeInvitationService{}, admin)
		rec := postJSON(t, ctrl.List, "/api/invitations", ListRequest{AdminKey: "wrong"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("returns invitations", func(t *testing.T) {
		svc := &fakeInvitationService{invitations: []*domain.Invitation{
			{ID: 1, Code: "AB12CD34", Email: "a@x.com", CreatedAt: time.Now()},
		}}
		ctrl := NewInvitationController(testLogger(), svc, admin)
		rec := postJSON(t, ctrl.List, "/api/invitations", ListRequest{AdminKey: "secret"})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ListResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Invitations, 1)
		assert.Equal(t, "AB12CD34", resp.Invitations[0].Code)
	})
}

func TestInvitationController_ValidateCode(t *testing.T) {
	newService := func() *fakeInvitationService {
		return &fakeInvitationService{byCode: map[string]*domain.Invitation{
			"AB12CD34": {ID: 1, Code: "AB12CD34", Email: "a@x.com"},
		}}
	}

	t.Run("lowercased code succeeds", func(t *testing.T) {
		ctrl := NewInvitationController(testLogger(), newService(), &fakeAdminVerifier{})
		rec := postJSON(t, ctrl.ValidateCode, "/api/validate-code", ValidateCodeRequest{Code: "ab12cd34", Name: "Alice"})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ValidateCodeResponse
		decodeBody(t, rec, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "AB12CD34", resp.Code)
		assert.Contains(t, resp.Message, "Alice")
	})

	t.Run("repeat validation still succeeds", func(t *testing.T) {
		svc := newService()
		ctrl := NewInvitationController(testLogger(), svc, &fakeAdminVerifier{})

		first := postJSON(t, ctrl.ValidateCode, "/api/validate-code", ValidateCodeRequest{Code: "ab12cd34", Name: "Alice"})
		require.Equal(t, http.StatusOK, first.Code)

		second := postJSON(t, ctrl.ValidateCode, "/api/validate-code", ValidateCodeRequest{Code: "AB12CD34", Name: "Alice"})
		require.Equal(t, http.StatusOK, second.Code)
		assert.True(t, svc.byCode["AB12CD34"].Used)
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := NewInvitationController(testLogger(), newService(), &fakeAdminVerifier{})
		rec := postJSON(t, ctrl.ValidateCode, "/api/validate-code", ValidateCodeRequest{Code: "ZZZZZZZZ", Name: "Alice"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", errorCode(t, rec))
		assert.Contains(t, rec.Body.String(), "not recognized by the court")
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := NewInvitationController(testLogger(), newService(), &fakeAdminVerifier{})
		rec := postJSON(t, ctrl.ValidateCode, "/api/validate-code", ValidateCodeRequest{Code: "AB12CD34"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := NewInvitationController(testLogger(), newService(), &fakeAdminVerifier{})
		req := httptest.NewRequest(http.MethodPost, "/api/validate-code", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		ctrl.ValidateCode(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
