package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The caller supplies the bcrypt hash in user.PasswordHash; the plaintext
// never reaches this layer. The returned user deliberately omits the hash.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Email, user.PasswordHash, user.Name, user.PhoneNumber,
		user.Settings.Country, user.Settings.Currency,
		user.Settings.BudgetAlerts, user.Settings.MonthlyBudget,
	)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	var saved models.User
	if err := row.Scan(
		&saved.UserID, &saved.Email, &saved.Name, &saved.PhoneNumber,
		&saved.Settings.Country, &saved.Settings.Currency,
		&saved.Settings.BudgetAlerts, &saved.Settings.MonthlyBudget,
		&saved.CreatedAt, &saved.UpdatedAt,
	); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return saved, nil
}

// FindUserByEmail retrieves a user record whose email matches the one
// provided, including the password hash column.
//
// This is the only query that selects password_hash; it exists solely for
// the login-verification path.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(
		&foundUser.UserID, &foundUser.Email, &foundUser.PasswordHash,
		&foundUser.Name, &foundUser.PhoneNumber,
		&foundUser.Settings.Country, &foundUser.Settings.Currency,
		&foundUser.Settings.BudgetAlerts, &foundUser.Settings.MonthlyBudget,
		&foundUser.CreatedAt, &foundUser.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// FindUserByID retrieves a user record by its identifier. The password hash
// is not selected; callers on the authenticated path never see it.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(
		&foundUser.UserID, &foundUser.Email, &foundUser.Name, &foundUser.PhoneNumber,
		&foundUser.Settings.Country, &foundUser.Settings.Currency,
		&foundUser.Settings.BudgetAlerts, &foundUser.Settings.MonthlyBudget,
		&foundUser.CreatedAt, &foundUser.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}
