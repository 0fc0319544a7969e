package repository_test

import (
	"context"
	"testing"

	"coursework/internal/model"
	"coursework/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCourseRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	courseRepo := repository.NewCourseRepository(gormDB)

	courseID := uuid.New()
	course := &model.Course{
		OwnerID: uuid.New(),
		Name:    "Linear Algebra",
		Code:    "MATH201",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(courseID.String()))
	mock.ExpectCommit()

	// Act
	err := courseRepo.Create(context.Background(), course)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, courseID, course.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_ListByOwner(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	courseRepo := repository.NewCourseRepository(gormDB)

	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "courses" WHERE owner_id = .*`).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name"}).
			AddRow(uuid.New().String(), ownerID.String(), "Algorithms").
			AddRow(uuid.New().String(), ownerID.String(), "Databases"))

	// Act
	courses, err := courseRepo.ListByOwner(context.Background(), ownerID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_ExistsOwned(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	courseRepo := repository.NewCourseRepository(gormDB)

	courseID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT "id" FROM "courses" WHERE id = .* AND owner_id = .*`).
		WithArgs(courseID, ownerID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(courseID.String()))

	// Act
	owned, err := courseRepo.ExistsOwned(context.Background(), courseID, ownerID)

	// Assert
	assert.NoError(t, err)
	assert.True(t, owned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_ExistsOwned_Foreign(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	courseRepo := repository.NewCourseRepository(gormDB)

	courseID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT "id" FROM "courses" WHERE id = .* AND owner_id = .*`).
		WithArgs(courseID, ownerID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	owned, err := courseRepo.ExistsOwned(context.Background(), courseID, ownerID)

	// Assert: not owned, but no error either
	assert.NoError(t, err)
	assert.False(t, owned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_Delete(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	courseRepo := repository.NewCourseRepository(gormDB)

	courseID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "courses" WHERE id = .*`).
		WithArgs(courseID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := courseRepo.Delete(context.Background(), courseID)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
