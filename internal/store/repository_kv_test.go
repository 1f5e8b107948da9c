package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-autofill-vault/internal/logger"
)

var (
	selectValueQuery = regexp.QuoteMeta("SELECT value FROM kv_entries WHERE key = ?")
	upsertValueQuery = regexp.QuoteMeta("INSERT INTO kv_entries (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key) DO UPDATE SET")
)

func newTestKVRepo(t *testing.T) (*keyValueRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &keyValueRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return fixed },
	}
	return repo, mock, db
}

func TestKeyValueRepository_Get_Success(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectValueQuery).
		WithArgs(SaltKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte{1, 2, 3}))

	got, err := repo.Get(context.Background(), SaltKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string([]byte{1, 2, 3}) {
		t.Errorf("unexpected value %v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestKeyValueRepository_Get_NotFound(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectValueQuery).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if errors.Is(err, ErrStorage) {
		t.Fatalf("not found must not be reported as a storage failure")
	}
}

func TestKeyValueRepository_Get_DBError(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectValueQuery).
		WithArgs("k").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Get(context.Background(), "k")
	if !errors.Is(err, ErrStorage) || !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrStorage and ErrExecutingQuery, got %v", err)
	}
}

func TestKeyValueRepository_Set_Success(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectExec(upsertValueQuery).
		WithArgs(CredentialsKey, []byte(`[]`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Set(context.Background(), CredentialsKey, []byte(`[]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestKeyValueRepository_Set_DBError(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectExec(upsertValueQuery).
		WithArgs("k", []byte("v"), sqlmock.AnyArg()).
		WillReturnError(errors.New("database is locked"))

	err := repo.Set(context.Background(), "k", []byte("v"))
	if !errors.Is(err, ErrStorage) || !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrStorage and ErrExecutingStatement, got %v", err)
	}
}
