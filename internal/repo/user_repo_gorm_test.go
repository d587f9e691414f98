package repo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"go-user-service/internal/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestUserRepoSave(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewUserRepo(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	u, err := r.Save(context.Background(), &domain.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), u.ID, "auto-increment id written back")
	assert.Equal(t, "Alice", u.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoGetByID(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewUserRepo(gdb)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}).
		AddRow(7, "Alice", "alice@example.com", now, now)
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?").WillReturnRows(rows)

	u, err := r.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, uint(7), u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoGetByIDNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewUserRepo(gdb)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}))

	// 未命中是显式缺失，不是错误
	u, err := r.GetByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.NoError(t, mock.ExpectationsWereMet())
}
