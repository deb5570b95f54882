package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Login:        "ada",
		Name:         "Ada",
		PasswordHash: "$2a$10$hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "login", "name", "password_hash", "created_at"}).
		AddRow(1, user.Login, user.Name, user.PasswordHash, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Login, user.Name, user.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.UserID != 1 {
		t.Errorf("expected user_id 1, got %d", created.UserID)
	}
	if created.Login != user.Login {
		t.Errorf("expected login %q, got %q", user.Login, created.Login)
	}
	if created.Password != "" {
		t.Errorf("plaintext password must be cleared, got %q", created.Password)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestCreateUser_LoginAlreadyExists(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Login: "ada", Name: "Ada", PasswordHash: "hash"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Login, user.Name, user.PasswordHash).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestFindUserByLogin_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "login", "name", "password_hash", "created_at"}).
		AddRow(7, "ada", "Ada", "$2a$10$hash", now)

	mock.ExpectQuery("SELECT user_id, login, name, password_hash, created_at").
		WithArgs("ada").
		WillReturnRows(rows)

	found, err := repo.FindUserByLogin(ctx, models.User{Login: "ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if found.UserID != 7 {
		t.Errorf("expected user_id 7, got %d", found.UserID)
	}
	if found.PasswordHash != "$2a$10$hash" {
		t.Errorf("unexpected password hash %q", found.PasswordHash)
	}
}

func TestFindUserByLogin_TransientFaultIsRetryable(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id, login, name, password_hash, created_at").
		WithArgs("ada").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	_, err := repo.FindUserByLogin(ctx, models.User{Login: "ada"})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id, login, name, password_hash, created_at").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "name", "password_hash", "created_at"}))

	_, err := repo.FindUserByLogin(ctx, models.User{Login: "nobody"})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
