package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"techconsult-api/internal/common"
	"techconsult-api/internal/models"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type UserRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo UserRepository
	ctx  context.Context
}

func (suite *UserRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewUserRepo(mock)
	suite.ctx = context.Background()
}

func (suite *UserRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestUserRepoTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepoTestSuite))
}

func (suite *UserRepoTestSuite) TestCreate_FillsGeneratedColumns() {
	createdAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(`INSERT INTO app_users`).
		WithArgs("max@example.com", "hashed", 2).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))

	user := &models.AppUser{
		Email:        "max@example.com",
		PasswordHash: "hashed",
		Role:         models.RoleRegularUser,
	}
	err := suite.repo.Create(suite.ctx, user)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, user.ID)
	assert.Equal(suite.T(), createdAt, user.CreatedAt)
}

func (suite *UserRepoTestSuite) TestCreate_UniqueViolationMapsToDuplicateEmail() {
	suite.mock.ExpectQuery(`INSERT INTO app_users`).
		WithArgs("max@example.com", "hashed", 2).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ix_app_users_email"})

	err := suite.repo.Create(suite.ctx, &models.AppUser{
		Email:        "max@example.com",
		PasswordHash: "hashed",
		Role:         models.RoleRegularUser,
	})

	assert.ErrorIs(suite.T(), err, common.ErrDuplicateEmail)
}

func (suite *UserRepoTestSuite) TestCreate_OtherStorageErrorIsWrapped() {
	suite.mock.ExpectQuery(`INSERT INTO app_users`).
		WithArgs("max@example.com", "hashed", 2).
		WillReturnError(errors.New("connection refused"))

	err := suite.repo.Create(suite.ctx, &models.AppUser{
		Email:        "max@example.com",
		PasswordHash: "hashed",
		Role:         models.RoleRegularUser,
	})

	assert.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, common.ErrDuplicateEmail)
}

func (suite *UserRepoTestSuite) TestGetByEmail_Success() {
	createdAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(`SELECT id, email, password_hash, role, created_at, last_login_at`).
		WithArgs("max@example.com").
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "email", "password_hash", "role", "created_at", "last_login_at"}).
			AddRow(7, "max@example.com", "hashed", models.RoleAdmin, createdAt, (*time.Time)(nil)))

	user, err := suite.repo.GetByEmail(suite.ctx, "max@example.com")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, user.ID)
	assert.Equal(suite.T(), models.RoleAdmin, user.Role)
	assert.Nil(suite.T(), user.LastLoginAt)
}

func (suite *UserRepoTestSuite) TestGetByEmail_NotFound() {
	suite.mock.ExpectQuery(`SELECT id, email, password_hash, role, created_at, last_login_at`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := suite.repo.GetByEmail(suite.ctx, "nobody@example.com")

	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	assert.Nil(suite.T(), user)
}

func (suite *UserRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`SELECT id, email, password_hash, role, created_at, last_login_at`).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	user, err := suite.repo.GetByID(suite.ctx, 99)

	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	assert.Nil(suite.T(), user)
}

func (suite *UserRepoTestSuite) TestExistsByEmail() {
	suite.mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("max@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := suite.repo.ExistsByEmail(suite.ctx, "max@example.com")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), exists)
}

func (suite *UserRepoTestSuite) TestUpdateLastLogin_Success() {
	at := time.Date(2026, 8, 28, 11, 30, 0, 0, time.UTC)

	suite.mock.ExpectExec(`UPDATE app_users SET last_login_at`).
		WithArgs(at, 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(suite.T(), suite.repo.UpdateLastLogin(suite.ctx, 7, at))
}

func (suite *UserRepoTestSuite) TestUpdateLastLogin_MissingUser() {
	at := time.Date(2026, 8, 28, 11, 30, 0, 0, time.UTC)

	suite.mock.ExpectExec(`UPDATE app_users SET last_login_at`).
		WithArgs(at, 99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(suite.T(), suite.repo.UpdateLastLogin(suite.ctx, 99, at), common.ErrNotFound)
}
