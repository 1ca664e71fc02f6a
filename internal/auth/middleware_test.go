package auth

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciaflow/backoffice/internal/domain"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

type fakeManagerRepository struct {
	managers map[string]*domain.Manager
	getErr   error
}

func (r *fakeManagerRepository) Create(context.Context, *domain.Manager) error { return nil }
func (r *fakeManagerRepository) Update(context.Context, *domain.Manager) error { return nil }

func (r *fakeManagerRepository) GetByID(_ context.Context, id string) (*domain.Manager, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	manager, ok := r.managers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return manager, nil
}

func (r *fakeManagerRepository) GetByEmail(context.Context, string) (*domain.Manager, error) {
	return nil, pgx.ErrNoRows
}

func (r *fakeManagerRepository) List(context.Context) ([]domain.Manager, error) {
	return nil, nil
}

func newAuthTestApp(middleware *AuthMiddleware) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})
	app.Get("/protegido", middleware.Handle, func(c *fiber.Ctx) error {
		principal, _ := PrincipalFromContext(c)
		return c.JSON(fiber.Map{"manager_id": principal.Manager.ID})
	})
	return app
}

func TestAuthMiddlewareAcceptsActiveManager(t *testing.T) {
	tokens := NewTokenManager("test-secret", 60)
	repo := &fakeManagerRepository{managers: map[string]*domain.Manager{
		"mgr_1": {ID: "mgr_1", Name: "Bruno Alves", Role: domain.RoleManager, Active: true},
	}}
	app := newAuthTestApp(NewAuthMiddleware(tokens, repo))

	token, _, err := tokens.GenerateToken("mgr_1", domain.RoleManager)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	tokens := NewTokenManager("test-secret", 60)
	app := newAuthTestApp(NewAuthMiddleware(tokens, &fakeManagerRepository{}))

	resp, err := app.Test(httptest.NewRequest("GET", "/protegido", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareUnknownManagerIsUnauthorized(t *testing.T) {
	tokens := NewTokenManager("test-secret", 60)
	// Storage layers wrap their errors; absence must still read as 401,
	// not a server fault.
	repo := &fakeManagerRepository{getErr: fmt.Errorf("query manager: %w", pgx.ErrNoRows)}
	app := newAuthTestApp(NewAuthMiddleware(tokens, repo))

	token, _, err := tokens.GenerateToken("mgr_gone", domain.RoleManager)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsInactiveManager(t *testing.T) {
	tokens := NewTokenManager("test-secret", 60)
	repo := &fakeManagerRepository{managers: map[string]*domain.Manager{
		"mgr_1": {ID: "mgr_1", Role: domain.RoleUser, Active: false},
	}}
	app := newAuthTestApp(NewAuthMiddleware(tokens, repo))

	token, _, err := tokens.GenerateToken("mgr_1", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
