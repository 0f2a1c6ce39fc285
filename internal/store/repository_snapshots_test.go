package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "github.com/mattn/go-sqlite3"

	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/migrations"
	"github.com/isavelev/go-cart-keeper/models"
)

func newTestTodoRepo(t *testing.T) (TodoSnapshotRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := NewTodoSnapshotRepository(&DB{DB: db, logger: l}, l)
	return repo, mock, db
}

func newTestCartRepo(t *testing.T) (CartSnapshotRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := NewCartSnapshotRepository(&DB{DB: db, logger: l}, l)
	return repo, mock, db
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestTodoRepository_Load_Success(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"snapshot"}).
		AddRow(`[{"id":"t1","text":"buy milk","completed":false}]`)
	mock.ExpectQuery(regexp.QuoteMeta(loadSnapshotFromTodos)).
		WithArgs("u1").
		WillReturnRows(rows)

	todos, err := repo.Load(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, models.Todo{ID: "t1", Text: "buy milk"}, todos[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Load_AbsentKeyIsEmpty(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(loadSnapshotFromTodos)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	todos, err := repo.Load(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestTodoRepository_Load_QueryError(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(loadSnapshotFromTodos)).
		WithArgs("u1").
		WillReturnError(assert.AnError)

	_, err := repo.Load(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestTodoRepository_Load_CorruptSnapshot(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"snapshot"}).AddRow(`{not json`)
	mock.ExpectQuery(regexp.QuoteMeta(loadSnapshotFromTodos)).
		WithArgs("u1").
		WillReturnRows(rows)

	_, err := repo.Load(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecodingSnapshot)
}

func TestTodoRepository_Load_EmptyUserID(t *testing.T) {
	repo, _, db := newTestTodoRepo(t)
	defer db.Close()

	_, err := repo.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestTodoRepository_Save_Upserts(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(saveSnapshotToTodos)).
		WithArgs("u1", []byte(`[{"id":"t1","text":"buy milk","completed":true}]`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), "u1", []models.Todo{
		{ID: "t1", Text: "buy milk", Completed: true},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Save_NilSnapshotStoresEmptyList(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(saveSnapshotToTodos)).
		WithArgs("u1", []byte(`[]`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Save_ExecError(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(saveSnapshotToTodos)).
		WillReturnError(assert.AnError)

	err := repo.Save(context.Background(), "u1", []models.Todo{{ID: "t1", Text: "x"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── Clear ────────────────────────────────────────────────────────────────────

func TestCartRepository_Clear_DeletesRow(t *testing.T) {
	repo, mock, db := newTestCartRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(clearSnapshotFromCart)).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Clear(context.Background(), "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── round trip against real SQLite ───────────────────────────────────────────

func newSQLiteStorages(t *testing.T) *ClientStorages {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Migrate(db))

	l := logger.Nop()
	wrapped := &DB{DB: db, logger: l}
	return &ClientStorages{
		TodoRepository: NewTodoSnapshotRepository(wrapped, l),
		CartRepository: NewCartSnapshotRepository(wrapped, l),
		db:             wrapped,
	}
}

func TestSnapshotRepositories_RoundTrip(t *testing.T) {
	storages := newSQLiteStorages(t)
	ctx := context.Background()

	todos := []models.Todo{
		{ID: "t1", Text: "buy milk"},
		{ID: "t2", Text: "walk dog", Completed: true},
	}
	cart := []models.CartItem{
		{Product: models.Product{ID: 7, Title: "pen", Price: 10}, Quantity: 2},
	}

	require.NoError(t, storages.TodoRepository.Save(ctx, "u1", todos))
	require.NoError(t, storages.CartRepository.Save(ctx, "u1", cart))

	gotTodos, err := storages.TodoRepository.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, todos, gotTodos)

	gotCart, err := storages.CartRepository.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, cart, gotCart)
}

func TestSnapshotRepositories_SaveReplacesWholeSnapshot(t *testing.T) {
	storages := newSQLiteStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.TodoRepository.Save(ctx, "u1", []models.Todo{
		{ID: "t1", Text: "old"},
		{ID: "t2", Text: "kept"},
	}))
	require.NoError(t, storages.TodoRepository.Save(ctx, "u1", []models.Todo{
		{ID: "t2", Text: "kept"},
	}))

	got, err := storages.TodoRepository.Load(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t2", got[0].ID)
}

func TestSnapshotRepositories_NoCrossUserVisibility(t *testing.T) {
	storages := newSQLiteStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.TodoRepository.Save(ctx, "alice", []models.Todo{
		{ID: "t1", Text: "alice's"},
	}))

	got, err := storages.TodoRepository.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSnapshotRepositories_ClearRemovesOnlyOneUser(t *testing.T) {
	storages := newSQLiteStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.CartRepository.Save(ctx, "u1", []models.CartItem{
		{Product: models.Product{ID: 1}, Quantity: 1},
	}))
	require.NoError(t, storages.CartRepository.Save(ctx, "u2", []models.CartItem{
		{Product: models.Product{ID: 2}, Quantity: 3},
	}))

	require.NoError(t, storages.CartRepository.Clear(ctx, "u1"))

	gone, err := storages.CartRepository.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := storages.CartRepository.Load(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, int64(2), kept[0].ID)
}
