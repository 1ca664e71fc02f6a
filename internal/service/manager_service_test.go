package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/agenciaflow/backoffice/internal/domain"
)

type memoryManagerRepository struct {
	managers map[string]*domain.Manager
	nextID   int
}

func newMemoryManagerRepository(managers ...*domain.Manager) *memoryManagerRepository {
	repo := &memoryManagerRepository{managers: make(map[string]*domain.Manager)}
	for _, manager := range managers {
		repo.managers[manager.ID] = manager
	}
	return repo
}

func (r *memoryManagerRepository) Create(_ context.Context, manager *domain.Manager) error {
	r.nextID++
	manager.ID = "mgr_" + string(rune('0'+r.nextID))
	stored := *manager
	r.managers[manager.ID] = &stored
	return nil
}

func (r *memoryManagerRepository) Update(_ context.Context, manager *domain.Manager) error {
	if _, ok := r.managers[manager.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *manager
	r.managers[manager.ID] = &stored
	return nil
}

func (r *memoryManagerRepository) GetByID(_ context.Context, id string) (*domain.Manager, error) {
	manager, ok := r.managers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *manager
	return &copied, nil
}

func (r *memoryManagerRepository) GetByEmail(_ context.Context, email string) (*domain.Manager, error) {
	for _, manager := range r.managers {
		if manager.Email == email {
			copied := *manager
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryManagerRepository) List(_ context.Context) ([]domain.Manager, error) {
	var result []domain.Manager
	for _, manager := range r.managers {
		result = append(result, *manager)
	}
	return result, nil
}

func TestCreateManagerHashesPasswordAndDefaultsRole(t *testing.T) {
	repo := newMemoryManagerRepository()
	svc := NewManagerService(repo, bcrypt.MinCost)

	manager, err := svc.CreateManager(context.Background(), ManagerCreateInput{
		Name:     "  Carla Mendes ",
		Email:    "Carla@Agencia.com",
		Password: "senha-forte",
	})
	require.NoError(t, err)

	assert.Equal(t, "Carla Mendes", manager.Name)
	assert.Equal(t, "carla@agencia.com", manager.Email)
	assert.Equal(t, domain.RoleUser, manager.Role)
	assert.True(t, manager.Active)
	assert.NotEqual(t, "senha-forte", manager.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte("senha-forte")))
}

func TestCreateManagerRejectsDuplicateEmail(t *testing.T) {
	repo := newMemoryManagerRepository(&domain.Manager{ID: "mgr_9", Email: "carla@agencia.com"})
	svc := NewManagerService(repo, bcrypt.MinCost)

	_, err := svc.CreateManager(context.Background(), ManagerCreateInput{
		Name:     "Carla",
		Email:    "carla@agencia.com",
		Password: "x",
	})
	require.Error(t, err)
}

func TestDisplayNameResolvesManager(t *testing.T) {
	repo := newMemoryManagerRepository(&domain.Manager{ID: "mgr_1", Name: "Bruno Alves", Active: true})
	svc := NewManagerService(repo, bcrypt.MinCost)
	ctx := context.Background()

	id := "mgr_1"
	assert.Equal(t, "Bruno Alves", svc.DisplayName(ctx, &id))
}

func TestDisplayNameFallsBackToSentinel(t *testing.T) {
	svc := NewManagerService(newMemoryManagerRepository(), bcrypt.MinCost)
	ctx := context.Background()

	missing := "mgr_999"
	empty := ""
	assert.Equal(t, domain.UnknownManagerName, svc.DisplayName(ctx, nil))
	assert.Equal(t, domain.UnknownManagerName, svc.DisplayName(ctx, &empty))
	assert.Equal(t, domain.UnknownManagerName, svc.DisplayName(ctx, &missing))
}
