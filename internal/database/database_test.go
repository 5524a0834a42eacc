package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u:p@localhost:5432/photos"))
	assert.True(t, IsPostgres("postgresql://localhost/photos"))
	assert.False(t, IsPostgres("photosync.db"))
	assert.False(t, IsPostgres(":memory:"))
}

func TestConnect_SQLiteMemory(t *testing.T) {
	db, err := Connect(":memory:", WithLogLevel(logger.Silent))
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
	assert.Equal(t, "sqlite", db.Dialector.Name())
}
