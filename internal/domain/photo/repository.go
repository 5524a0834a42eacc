package photo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Repository is the metadata store for photos.
type Repository interface {
	Migrate(ctx context.Context) error
	Create(ctx context.Context, p *Photo) error
	List(ctx context.Context) ([]Photo, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&photoRow{})
}

// Create inserts p and sets p.ID to the identifier assigned by the store.
func (r *repository) Create(ctx context.Context, p *Photo) error {
	row := toRow(p)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return classifyError(err)
	}
	p.ID = row.ID
	return nil
}

// List returns every photo in primary key order.
func (r *repository) List(ctx context.Context) ([]Photo, error) {
	var rows []photoRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	photos := make([]Photo, 0, len(rows))
	for _, row := range rows {
		photos = append(photos, fromRow(row))
	}
	return photos, nil
}

func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w (%s)", ErrDuplicateStoredName, pgErr.ConstraintName)
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %s", ErrDuplicateStoredName, sqliteErr.Error())
		}
	}
	return err
}
