package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gesol/go-solar-backend/internal/domain"
	"github.com/gesol/go-solar-backend/internal/estimator"
	"github.com/gesol/go-solar-backend/internal/repo"
	"github.com/gesol/go-solar-backend/internal/services"
)

// ---------- flexible service stubs ----------

type stubContactSvc struct {
	submit func(context.Context, services.ContactInput) (*domain.Contact, error)
	list   func(context.Context) ([]domain.Contact, error)
}

func (s stubContactSvc) Submit(ctx context.Context, in services.ContactInput) (*domain.Contact, error) {
	if s.submit != nil {
		return s.submit(ctx, in)
	}
	return &domain.Contact{ID: "c1", Name: in.Name}, nil
}

func (s stubContactSvc) List(ctx context.Context) ([]domain.Contact, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

type stubBudgetSvc struct {
	calculate func(context.Context, float64, float64) (estimator.Result, error)
	submit    func(context.Context, services.BudgetInput) (*domain.Budget, error)
	list      func(context.Context) ([]domain.Budget, error)
	stats     func(context.Context) (repo.SubmissionStats, error)
}

func (s stubBudgetSvc) Calculate(ctx context.Context, consumption, area float64) (estimator.Result, error) {
	if s.calculate != nil {
		return s.calculate(ctx, consumption, area)
	}
	return estimator.Estimate(consumption, area)
}

func (s stubBudgetSvc) Submit(ctx context.Context, in services.BudgetInput) (*domain.Budget, error) {
	if s.submit != nil {
		return s.submit(ctx, in)
	}
	return &domain.Budget{ID: "b1", Name: in.Name}, nil
}

func (s stubBudgetSvc) List(ctx context.Context) ([]domain.Budget, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func (s stubBudgetSvc) Stats(ctx context.Context) (repo.SubmissionStats, error) {
	if s.stats != nil {
		return s.stats(ctx)
	}
	return repo.SubmissionStats{}, nil
}

type stubUserSvc struct {
	get func(context.Context, string) (*domain.User, error)
}

func (s stubUserSvc) Get(ctx context.Context, id string) (*domain.User, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return nil, repo.ErrNotFound
}

// newTestRouter mounts the handlers on a bare engine, no middleware.
func newTestRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", h.SubmitContact)
	r.GET("/contact", h.ListContacts)
	r.GET("/budget/calculate", h.CalculateBudget)
	r.POST("/budget", h.SubmitBudget)
	r.GET("/budget", h.ListBudgets)
	r.GET("/stats", h.SubmissionStats)
	r.GET("/auth/me", h.Me)
	r.POST("/auth/logout", h.Logout)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

// ---------- SubmitContact ----------

func TestSubmitContact_Success(t *testing.T) {
	var got services.ContactInput
	h := New(stubContactSvc{
		submit: func(_ context.Context, in services.ContactInput) (*domain.Contact, error) {
			got = in
			return &domain.Contact{ID: "c1"}, nil
		},
	}, stubBudgetSvc{}, stubUserSvc{}, "gesol_session")
	r := newTestRouter(h)

	w := doJSON(r, http.MethodPost, "/contact",
		`{"name":"Maria","email":"maria@example.com","phone":"11999999999","subject":"Oi","message":"Olá"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var resp SubmitResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Message != "Contato enviado com sucesso!" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if got.Name != "Maria" || got.Email != "maria@example.com" {
		t.Fatalf("service received wrong input: %+v", got)
	}
}

func TestSubmitContact_MalformedJSON(t *testing.T) {
	h := New(stubContactSvc{}, stubBudgetSvc{}, stubUserSvc{}, "gesol_session")
	r := newTestRouter(h)

	w := doJSON(r, http.MethodPost, "/contact", `{"name":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeBadRequest {
		t.Fatalf("code = %q", resp.Code)
	}
}

func TestSubmitContact_ValidationError(t *testing.T) {
	h := New(stubContactSvc{
		submit: func(context.Context, services.ContactInput) (*domain.Contact, error) {
			return nil, services.ErrNameRequired
		},
	}, stubBudgetSvc{}, stubUserSvc{}, "gesol_session")
	r := newTestRouter(h)

	w := doJSON(r, http.MethodPost, "/contact", `{"name":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeValidation || resp.Message != "Nome é obrigatório" {
		t.Fatalf("expected verbatim localized message, got %+v", resp)
	}
}

func TestSubmitContact_PersistenceFailure_SoftEnvelope(t *testing.T) {
	h := New(stubContactSvc{
		submit: func(context.Context, services.ContactInput) (*domain.Contact, error) {
			return nil, errors.New("disk on fire")
		},
	}, stubBudgetSvc{}, stubUserSvc{}, "gesol_session")
	r := newTestRouter(h)

	w := doJSON(r, http.MethodPost, "/contact",
		`{"name":"Maria","email":"maria@example.com","phone":"1","subject":"s","message":"m"}`)

	// The request was well-formed; the outcome travels in the envelope.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp SubmitResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success || resp.Message != "Erro ao enviar contato" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("disk on fire")) {
		t.Fatalf("internal cause leaked to client: %s", w.Body.String())
	}
}

// ---------- ListContacts ----------

func TestListContacts(t *testing.T) {
	h := New(stubContactSvc{
		list: func(context.Context) ([]domain.Contact, error) {
			return []domain.Contact{{ID: "a", Name: "Maria"}, {ID: "b", Name: "João"}}, nil
		},
	}, stubBudgetSvc{}, stubUserSvc{}, "gesol_session")
	r := newTestRouter(h)

	w := doJSON(r, http.MethodGet, "/contact", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list []domain.Contact
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Maria" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestListContacts_Error(t *testing.T) {
	h := New(stubContactSvc{
		list: func(context.Context) ([]domain.Contact, error) {
			return nil, errors.New("boom")
		},
	}, stubBudgetSvc{}, stubUserSvc{}, "gesol_session")
	r := newTestRouter(h)

	w := doJSON(r, http.MethodGet, "/contact", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeListFailed {
		t.Fatalf("code = %q", resp.Code)
	}
}
