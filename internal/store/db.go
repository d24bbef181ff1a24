package store

import (
	"campaign-server/internal/observability"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrStatusChanged is returned when a compare-and-set status update matched no row.
	ErrStatusChanged = errors.New("campaign status changed concurrently")
	// ErrDeviceLocked is returned when the device already holds an active campaign of the type.
	ErrDeviceLocked = errors.New("device already holds an active campaign of this type")
	// ErrAccountLocked is returned when an account is already held by an active campaign.
	ErrAccountLocked = errors.New("account already held by an active campaign")
)

// AccountLockError names the accounts whose lock rows could not be inserted.
type AccountLockError struct {
	AccountIDs []int64
}

func (e *AccountLockError) Error() string {
	return fmt.Sprintf("%s: %v", ErrAccountLocked.Error(), e.AccountIDs)
}

func (e *AccountLockError) Unwrap() error {
	return ErrAccountLocked
}

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, fmt.Errorf("failed to open database: %w", err)
	}
	return Store{db: db, logger: logger}, nil
}

// NewWithDB wraps an already opened connection.
func NewWithDB(db *sqlx.DB, logger *observability.Logger) Store {
	return Store{db: db, logger: logger}
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}
