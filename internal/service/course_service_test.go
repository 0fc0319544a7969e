package service_test

import (
	"context"
	"testing"
	"time"

	"coursework/internal/apperr"
	"coursework/internal/model"
	"coursework/internal/repository"
	"coursework/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const storeTimeout = 5 * time.Second

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func newCourseService(db *gorm.DB) *service.CourseService {
	return service.NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewTaskRepository(db),
		storeTimeout,
	)
}

func testOwner() *model.User {
	return &model.User{ID: uuid.New(), Email: "student@example.com", Username: "student"}
}

func TestCourseService_Delete_CascadesToTasks(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	svc := newCourseService(gormDB)

	owner := testOwner()
	courseID := uuid.New()

	// Ownership guard lookup
	mock.ExpectQuery(`SELECT .* FROM "courses" WHERE id = .* AND owner_id = .*`).
		WithArgs(courseID, owner.ID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name"}).
			AddRow(courseID.String(), owner.ID.String(), "Algorithms"))

	// Course delete first, then the dependent tasks. Two separate
	// statements, no shared transaction.
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "courses" WHERE id = .*`).
		WithArgs(courseID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE course_id = .*`).
		WithArgs(courseID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	// Act
	err := svc.Delete(context.Background(), owner, courseID.String())

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseService_Delete_ForeignCourseIsNotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	svc := newCourseService(gormDB)

	owner := testOwner()
	courseID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "courses" WHERE id = .* AND owner_id = .*`).
		WithArgs(courseID, owner.ID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	err := svc.Delete(context.Background(), owner, courseID.String())

	// Assert: nothing was deleted
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseService_Delete_CascadeFailureIsNotSuccess(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	svc := newCourseService(gormDB)

	owner := testOwner()
	courseID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "courses" WHERE id = .* AND owner_id = .*`).
		WithArgs(courseID, owner.ID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name"}).
			AddRow(courseID.String(), owner.ID.String(), "Algorithms"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "courses" WHERE id = .*`).
		WithArgs(courseID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE course_id = .*`).
		WithArgs(courseID).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	// Act
	err := svc.Delete(context.Background(), owner, courseID.String())

	// Assert: the orphaned tasks are reported, not silently accepted
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cascade")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseService_Delete_MalformedID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	svc := newCourseService(gormDB)

	err := svc.Delete(context.Background(), testOwner(), "not-an-id")

	assert.ErrorIs(t, err, apperr.ErrInvalidID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseService_Update_FullReplace(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	svc := newCourseService(gormDB)

	owner := testOwner()
	courseID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "courses" WHERE id = .* AND owner_id = .*`).
		WithArgs(courseID, owner.ID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "code", "color"}).
			AddRow(courseID.String(), owner.ID.String(), "Algorithms", "CS301", "blue"))

	// Full-replace: every mutable column is written, including the ones the
	// caller left empty.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "courses" SET .*"code"=.*"color"=.*"description"=.*"name"=.*`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	course, err := svc.Update(context.Background(), owner, courseID.String(), service.CourseFields{
		Name: "Advanced Algorithms",
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Advanced Algorithms", course.Name)
	assert.Equal(t, "", course.Code)
	assert.Equal(t, "", course.Color)
	assert.NoError(t, mock.ExpectationsWereMet())
}
