package mysql

import (
	"context"
	"errors"
	"testing"

	historyDomain "rentify-backend/internal/domain/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHistory_CreateListSave(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()
	it := seedItem(t, db, "tent", "Available")

	a := &historyDomain.Record{UserID: 1, ItemID: it.ID, Status: historyDomain.StatusReturned}
	b := &historyDomain.Record{UserID: 2, ItemID: it.ID, Status: historyDomain.StatusReturnedLate, LateReturn: true}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "tent", mine[0].ItemName)
	assert.True(t, mine[0].LateReturn)

	a.Status = historyDomain.StatusReturnedLate
	a.LateReturn = true
	require.NoError(t, repo.Save(ctx, a))
	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, historyDomain.StatusReturnedLate, got.Status)

	_, err = repo.GetByID(ctx, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
