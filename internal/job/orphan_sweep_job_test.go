package job

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"portal-metadata-api/internal/domain"
	"portal-metadata-api/internal/repository"
)

type mockValueRepo struct {
	DistinctOwnersFunc  func(ctx context.Context) ([]repository.EntityRef, error)
	DeleteForEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID string) error
}

func (m *mockValueRepo) Upsert(ctx context.Context, value *domain.CustomFieldValue) error {
	return nil
}

func (m *mockValueRepo) FindByOwner(ctx context.Context, entityType domain.EntityType, entityID string) ([]*domain.CustomFieldValue, error) {
	return nil, nil
}

func (m *mockValueRepo) FindByOwnerAndDefinition(ctx context.Context, entityType domain.EntityType, entityID string, fieldDefinitionID uuid.UUID) (*domain.CustomFieldValue, error) {
	return nil, nil
}

func (m *mockValueRepo) DeleteByOwnerAndDefinition(ctx context.Context, entityType domain.EntityType, entityID string, fieldDefinitionID uuid.UUID) error {
	return nil
}

func (m *mockValueRepo) DeleteForEntity(ctx context.Context, entityType domain.EntityType, entityID string) error {
	if m.DeleteForEntityFunc != nil {
		return m.DeleteForEntityFunc(ctx, entityType, entityID)
	}
	return nil
}

func (m *mockValueRepo) DistinctOwners(ctx context.Context) ([]repository.EntityRef, error) {
	if m.DistinctOwnersFunc != nil {
		return m.DistinctOwnersFunc(ctx)
	}
	return nil, nil
}

type mockPortalClient struct {
	EntityExistsFunc func(ctx context.Context, entityType domain.EntityType, entityID string) (bool, error)
}

func (m *mockPortalClient) ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (m *mockPortalClient) EntityExists(ctx context.Context, entityType domain.EntityType, entityID string) (bool, error) {
	if m.EntityExistsFunc != nil {
		return m.EntityExistsFunc(ctx, entityType, entityID)
	}
	return true, nil
}

func TestOrphanSweepJob_DeletesOnlyConfirmedOrphans(t *testing.T) {
	owners := []repository.EntityRef{
		{EntityType: domain.EntityTypeOpportunity, EntityID: "opp-alive"},
		{EntityType: domain.EntityTypeOpportunity, EntityID: "opp-deleted"},
		{EntityType: domain.EntityTypeAccount, EntityID: "acct-unreachable"},
	}

	var deleted []string
	valueRepo := &mockValueRepo{
		DistinctOwnersFunc: func(ctx context.Context) ([]repository.EntityRef, error) {
			return owners, nil
		},
		DeleteForEntityFunc: func(ctx context.Context, entityType domain.EntityType, entityID string) error {
			deleted = append(deleted, entityID)
			return nil
		},
	}
	portal := &mockPortalClient{
		EntityExistsFunc: func(ctx context.Context, entityType domain.EntityType, entityID string) (bool, error) {
			switch entityID {
			case "opp-alive":
				return true, nil
			case "opp-deleted":
				return false, nil
			default:
				// Portal errors must skip the owner, never delete
				return false, errors.New("portal unreachable")
			}
		},
	}

	job := NewOrphanSweepJob(valueRepo, portal, zap.NewNop(), nil)
	job.Run()

	assert.Equal(t, []string{"opp-deleted"}, deleted)
}

func TestOrphanSweepJob_NoOwners(t *testing.T) {
	valueRepo := &mockValueRepo{
		DeleteForEntityFunc: func(ctx context.Context, entityType domain.EntityType, entityID string) error {
			t.Fatal("nothing should be deleted when there are no owners")
			return nil
		},
	}

	job := NewOrphanSweepJob(valueRepo, &mockPortalClient{}, zap.NewNop(), nil)
	job.Run()
}

func TestOrphanSweepJob_OwnerListingFailure(t *testing.T) {
	valueRepo := &mockValueRepo{
		DistinctOwnersFunc: func(ctx context.Context) ([]repository.EntityRef, error) {
			return nil, errors.New("database down")
		},
		DeleteForEntityFunc: func(ctx context.Context, entityType domain.EntityType, entityID string) error {
			t.Fatal("nothing should be deleted when listing fails")
			return nil
		},
	}

	job := NewOrphanSweepJob(valueRepo, &mockPortalClient{}, zap.NewNop(), nil)
	job.Run()
}
