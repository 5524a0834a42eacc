package photo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"photosync/internal/database"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:", database.WithLogLevel(logger.Silent))
	require.NoError(t, err)

	// one connection keeps the in-memory database alive and serializes writers
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func setupRepository(t *testing.T) Repository {
	t.Helper()
	repo := NewRepository(setupDB(t))
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func newPhoto(i int) *Photo {
	name := fmt.Sprintf("img-%d.jpg", i)
	return &Photo{
		OriginalFileName: &name,
		StoredFileName:   fmt.Sprintf("stored-%d.jpg", i),
		FilePath:         fmt.Sprintf("uploads/stored-%d.jpg", i),
		FileSize:         int64(100 + i),
		UploadDate:       LocalTime(time.Now()),
	}
}

func TestRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 3; i++ {
		p := newPhoto(i)
		require.NoError(t, repo.Create(ctx, p))
		assert.Greater(t, p.ID, last)
		last = p.ID
	}
}

func TestRepository_ListOrderAndNulls(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	first := newPhoto(1)
	second := newPhoto(2)
	second.OriginalFileName = nil
	second.MimeType = nil
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	photos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 2)

	assert.Equal(t, first.ID, photos[0].ID)
	assert.Equal(t, second.ID, photos[1].ID)
	assert.Equal(t, "img-1.jpg", *photos[0].OriginalFileName)
	assert.Nil(t, photos[1].OriginalFileName)
	assert.Nil(t, photos[1].MimeType)
	assert.Equal(t, int64(101), photos[0].FileSize)
	assert.Equal(t, "uploads/stored-1.jpg", photos[0].FilePath)
}

func TestRepository_ListEmpty(t *testing.T) {
	repo := setupRepository(t)

	photos, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, photos)
	assert.Empty(t, photos)
}

func TestRepository_StoredNameUnique(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPhoto(1)))
	err := repo.Create(ctx, newPhoto(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateStoredName)
}

func TestClassifyError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_photos_stored_file_name"}
	err := classifyError(fmt.Errorf("insert: %w", pgErr))
	assert.True(t, errors.Is(err, ErrDuplicateStoredName))
	assert.Contains(t, err.Error(), "idx_photos_stored_file_name")

	other := errors.New("connection refused")
	assert.Equal(t, other, classifyError(other))
}
