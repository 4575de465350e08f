package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portal-metadata-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.PicklistDefinition{},
		&domain.PicklistValue{},
		&domain.CustomFieldDefinition{},
		&domain.CustomFieldValue{},
	))
	return db
}

func newPicklist(name string, valueKeys ...string) *domain.PicklistDefinition {
	picklist := &domain.PicklistDefinition{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      name,
		NameKey:   name,
	}
	for i, key := range valueKeys {
		picklist.Values = append(picklist.Values, domain.PicklistValue{
			BaseModel:  domain.BaseModel{ID: uuid.New()},
			PicklistID: picklist.ID,
			Value:      key,
			Label:      key,
			SortOrder:  i,
			IsActive:   true,
		})
	}
	return picklist
}

func TestPicklistRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPicklistRepository(db)
	ctx := context.Background()

	picklist := newPicklist("contracttype", "ffp", "tm", "cpff")
	require.NoError(t, repo.Create(ctx, picklist))

	found, err := repo.FindByID(ctx, picklist.ID)
	require.NoError(t, err)
	require.Len(t, found.Values, 3)
	// Values come back in sort order
	assert.Equal(t, "ffp", found.Values[0].Value)
	assert.Equal(t, "tm", found.Values[1].Value)
	assert.Equal(t, "cpff", found.Values[2].Value)

	byName, err := repo.FindByNameKey(ctx, "contracttype")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, picklist.ID, byName.ID)

	missing, err := repo.FindByNameKey(ctx, "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPicklistRepository_UniqueNameKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPicklistRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPicklist("portfolio")))
	err := repo.Create(ctx, newPicklist("portfolio"))
	assert.Error(t, err, "duplicate name keys must be rejected by the unique index")
}

func TestPicklistRepository_UniqueValueKeyPerPicklist(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPicklistRepository(db)
	ctx := context.Background()

	first := newPicklist("stages", "open")
	require.NoError(t, repo.Create(ctx, first))

	duplicate := &domain.PicklistValue{
		BaseModel:  domain.BaseModel{ID: uuid.New()},
		PicklistID: first.ID,
		Value:      "open",
		Label:      "Open Again",
	}
	assert.Error(t, repo.AddValue(ctx, duplicate))

	// The same key in a different picklist is fine
	second := newPicklist("other", "open")
	assert.NoError(t, repo.Create(ctx, second))
}

func TestPicklistRepository_FindValueByKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPicklistRepository(db)
	ctx := context.Background()

	picklist := newPicklist("stages", "open", "won")
	require.NoError(t, repo.Create(ctx, picklist))

	// Deactivated values are still found; their key stays reserved
	deactivated := picklist.Values[1]
	deactivated.IsActive = false
	require.NoError(t, repo.UpdateValue(ctx, &deactivated))

	found, err := repo.FindValueByKey(ctx, picklist.ID, "won")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.IsActive)

	missing, err := repo.FindValueByKey(ctx, picklist.ID, "lost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPicklistRepository_Reorder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPicklistRepository(db)
	ctx := context.Background()

	picklist := newPicklist("stages", "a", "b", "c")
	require.NoError(t, repo.Create(ctx, picklist))

	ids := []uuid.UUID{picklist.Values[2].ID, picklist.Values[0].ID, picklist.Values[1].ID}
	require.NoError(t, repo.Reorder(ctx, picklist.ID, ids))

	values, err := repo.FindValues(ctx, picklist.ID)
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, "c", values[0].Value)
	assert.Equal(t, "a", values[1].Value)
	assert.Equal(t, "b", values[2].Value)
	for i, v := range values {
		assert.Equal(t, i, v.SortOrder)
	}
}

func TestPicklistRepository_ReorderMismatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPicklistRepository(db)
	ctx := context.Background()

	picklist := newPicklist("stages", "a", "b", "c")
	require.NoError(t, repo.Create(ctx, picklist))

	t.Run("too few ids", func(t *testing.T) {
		err := repo.Reorder(ctx, picklist.ID, []uuid.UUID{picklist.Values[0].ID})
		assert.ErrorIs(t, err, ErrValueSetMismatch)
	})

	t.Run("foreign id", func(t *testing.T) {
		ids := []uuid.UUID{picklist.Values[0].ID, picklist.Values[1].ID, uuid.New()}
		err := repo.Reorder(ctx, picklist.ID, ids)
		assert.ErrorIs(t, err, ErrValueSetMismatch)
	})

	t.Run("repeated id", func(t *testing.T) {
		ids := []uuid.UUID{picklist.Values[0].ID, picklist.Values[1].ID, picklist.Values[1].ID}
		err := repo.Reorder(ctx, picklist.ID, ids)
		assert.ErrorIs(t, err, ErrValueSetMismatch)
	})

	// A failed reorder leaves the original order intact
	values, err := repo.FindValues(ctx, picklist.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", values[0].Value)
}

func TestPicklistRepository_ListOrdersByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPicklistRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPicklist("zulu")))
	require.NoError(t, repo.Create(ctx, newPicklist("alpha")))
	require.NoError(t, repo.Create(ctx, newPicklist("mike")))

	picklists, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, picklists, 3)
	assert.Equal(t, "alpha", picklists[0].Name)
	assert.Equal(t, "mike", picklists[1].Name)
	assert.Equal(t, "zulu", picklists[2].Name)
}
