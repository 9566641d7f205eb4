package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/projectdesk-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestAccessRequestRepository_FindUnreadByPMName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccessRequestRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "access_requests" WHERE pm_name = $1 AND updated = $2 AND pm_notified = $3 ORDER BY id`)).
		WithArgs("John", true, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "pm_name", "updated", "pm_notified", "user_id"}))

	requests, err := repo.FindUnreadByPMName(context.Background(), "John")

	require.NoError(t, err)
	assert.Empty(t, requests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessRequestRepository_FindActiveJoinsLiveRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccessRequestRepository(db)

	mock.ExpectQuery(`FROM "access_requests" ` +
		`JOIN users ON users\.id = access_requests\.user_id AND users\.deleted_at IS NULL ` +
		`LEFT JOIN projects ON projects\.id = access_requests\.project_id ` +
		`WHERE \(?access_requests\.project_id IS NULL OR projects\.deleted_at IS NULL\)? ` +
		`ORDER BY access_requests\.id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "pm_name", "user_id"}))

	requests, err := repo.FindActive(context.Background())

	require.NoError(t, err)
	assert.Empty(t, requests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessRequestRepository_SaveDecisionGrantsInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccessRequestRepository(db)
	projectID := uint(3)
	req := &models.AccessRequest{ID: 1, PMName: "John", UserID: 2, ProjectID: &projectID, Allowed: true, Updated: true}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "access_requests" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO project_members (project_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`)).
		WithArgs(projectID, uint(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveDecision(context.Background(), req))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessRequestRepository_SaveDecisionRollsBackFailedGrant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccessRequestRepository(db)
	projectID := uint(3)
	req := &models.AccessRequest{ID: 1, PMName: "John", UserID: 2, ProjectID: &projectID, Allowed: true, Updated: true}
	dbErr := errors.New("project_members is locked")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "access_requests" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO project_members`)).
		WillReturnError(dbErr)
	mock.ExpectRollback()

	err := repo.SaveDecision(context.Background(), req)

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessRequestRepository_SaveDecisionDenialSkipsMembership(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccessRequestRepository(db)
	projectID := uint(3)
	req := &models.AccessRequest{ID: 1, PMName: "John", UserID: 2, ProjectID: &projectID, Updated: true}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "access_requests" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveDecision(context.Background(), req))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessRequestRepository_FindByIDMiss(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccessRequestRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "access_requests" WHERE "access_requests"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), 42)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessRequestRepository_DeleteAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccessRequestRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "access_requests"`)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessRequestRepository_DeleteAllPropagatesError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccessRequestRepository(db)
	dbErr := errors.New("relation is locked")

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "access_requests"`)).
		WillReturnError(dbErr)

	err := repo.DeleteAll(context.Background())

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByTokenScopesDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE token = $1 AND "users"."deleted_at" IS NULL`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByToken(context.Background(), "tok")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
