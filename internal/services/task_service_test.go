package services

import (
	"testing"
	"time"

	"github.com/mochizukey/task-rest-api/internal/models"
	"github.com/mochizukey/task-rest-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *TaskService
}

// SetupTest runs before each test
func (suite *TaskServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Task{})
	suite.Require().NoError(err)

	suite.service = NewTaskService(repository.NewTaskRepository(suite.db))
}

// TearDownTest runs after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// TestCreateTask_Defaults tests that omitted status and priority fall back to
// the schema defaults and both timestamps are set to the same instant
func (suite *TaskServiceTestSuite) TestCreateTask_Defaults() {
	task, err := suite.service.CreateTask(CreateTaskInput{Title: "A", UserID: 1})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TaskStatusInProgress, task.Status)
	assert.Equal(suite.T(), models.TaskPriorityMedium, task.Priority)
	assert.NotZero(suite.T(), task.TaskID)
	assert.Equal(suite.T(), task.CreatedAt, task.UpdatedAt)
}

// TestCreateTask_UniqueIDs tests that identifiers never repeat across creates
func (suite *TaskServiceTestSuite) TestCreateTask_UniqueIDs() {
	seen := make(map[uint64]bool)
	for i := 0; i < 10; i++ {
		task, err := suite.service.CreateTask(CreateTaskInput{Title: "A", UserID: 1})
		suite.Require().NoError(err)
		assert.False(suite.T(), seen[task.TaskID])
		seen[task.TaskID] = true
	}
}

// TestCreateTask_Validation tests title and enum validation
func (suite *TaskServiceTestSuite) TestCreateTask_Validation() {
	_, err := suite.service.CreateTask(CreateTaskInput{UserID: 1})
	assert.ErrorIs(suite.T(), err, ErrTitleRequired)

	_, err = suite.service.CreateTask(CreateTaskInput{Title: "A", UserID: 1, Status: "paused"})
	assert.ErrorIs(suite.T(), err, ErrInvalidStatus)

	_, err = suite.service.CreateTask(CreateTaskInput{Title: "A", UserID: 1, Priority: "urgent"})
	assert.ErrorIs(suite.T(), err, ErrInvalidPriority)
}

// TestUpdateTask_PartialReplacement tests that nil fields retain stored
// values while provided fields replace them
func (suite *TaskServiceTestSuite) TestUpdateTask_PartialReplacement() {
	due := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	task, err := suite.service.CreateTask(CreateTaskInput{
		Title:       "Original",
		UserID:      1,
		Description: "Keep me",
		Priority:    models.TaskPriorityHigh,
		DueDate:     &due,
	})
	suite.Require().NoError(err)

	newTitle := "Renamed"
	updated, err := suite.service.UpdateTask(task.TaskID, UpdateTaskInput{Title: &newTitle})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Renamed", updated.Title)
	assert.Equal(suite.T(), "Keep me", updated.Description)
	assert.Equal(suite.T(), models.TaskPriorityHigh, updated.Priority)
	suite.Require().NotNil(updated.DueDate)
	assert.True(suite.T(), due.Equal(*updated.DueDate))
	assert.WithinDuration(suite.T(), task.CreatedAt, updated.CreatedAt, time.Second)
	assert.False(suite.T(), updated.UpdatedAt.Before(updated.CreatedAt))
}

// TestUpdateTask_MarksCompleted tests that every update forces the status to
// completed regardless of the stored value
func (suite *TaskServiceTestSuite) TestUpdateTask_MarksCompleted() {
	task, err := suite.service.CreateTask(CreateTaskInput{Title: "A", UserID: 1})
	suite.Require().NoError(err)
	suite.Require().Equal(models.TaskStatusInProgress, task.Status)

	updated, err := suite.service.UpdateTask(task.TaskID, UpdateTaskInput{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TaskStatusCompleted, updated.Status)
}

// TestUpdateTask_EmptyTitle tests that an explicit empty title is rejected
func (suite *TaskServiceTestSuite) TestUpdateTask_EmptyTitle() {
	task, err := suite.service.CreateTask(CreateTaskInput{Title: "A", UserID: 1})
	suite.Require().NoError(err)

	empty := ""
	_, err = suite.service.UpdateTask(task.TaskID, UpdateTaskInput{Title: &empty})
	assert.ErrorIs(suite.T(), err, ErrTitleEmpty)
}

// TestUpdateTask_NotFound tests the typed error for a missing task
func (suite *TaskServiceTestSuite) TestUpdateTask_NotFound() {
	_, err := suite.service.UpdateTask(9999, UpdateTaskInput{})
	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)
}

// TestDeleteTask tests that delete returns the prior row and a later get fails
func (suite *TaskServiceTestSuite) TestDeleteTask() {
	task, err := suite.service.CreateTask(CreateTaskInput{Title: "Doomed", UserID: 1})
	suite.Require().NoError(err)

	deleted, err := suite.service.DeleteTask(task.TaskID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Doomed", deleted.Title)
	assert.Equal(suite.T(), task.TaskID, deleted.TaskID)

	_, err = suite.service.GetTask(task.TaskID)
	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)

	_, err = suite.service.DeleteTask(task.TaskID)
	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)
}

// TestListTasks_WindowAndTotal tests the pagination window invariants
func (suite *TaskServiceTestSuite) TestListTasks_WindowAndTotal() {
	for i := 0; i < 7; i++ {
		_, err := suite.service.CreateTask(CreateTaskInput{Title: "T", UserID: 1})
		suite.Require().NoError(err)
	}

	tasks, total, err := suite.service.ListTasks(ListTasksInput{Page: 2, PageSize: 3})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), total)
	assert.Len(suite.T(), tasks, 3)

	// Last partial page
	tasks, total, err = suite.service.ListTasks(ListTasksInput{Page: 3, PageSize: 3})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), total)
	assert.Len(suite.T(), tasks, 1)

	// Stable insertion order
	tasks, _, err = suite.service.ListTasks(ListTasksInput{Page: 1, PageSize: 7})
	assert.NoError(suite.T(), err)
	for i := 1; i < len(tasks); i++ {
		assert.Greater(suite.T(), tasks[i].TaskID, tasks[i-1].TaskID)
	}
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
