package services

import (
	"errors"
	"fmt"

	"mit-tracker/mittrack/database"
	"mit-tracker/mittrack/models"
	"mit-tracker/mittrack/utils/dates"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultFindLimit caps Find results when the caller does not supply a limit.
const DefaultFindLimit = 100

// TaskFilter narrows Find results. Zero-value date bounds mean "today";
// a nil Completed means no completion filter; a non-positive Limit means
// DefaultFindLimit.
type TaskFilter struct {
	StartDate string
	EndDate   string
	Completed *bool
	Limit     int
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Description *string
	Completed   *bool
	Order       *int
	Date        *string
}

type TaskServiceInterface interface {
	Create(db *database.Database, description string, order *int, date string) (models.Task, error)
	Find(db *database.Database, filter TaskFilter) ([]models.Task, error)
	FindAll(db *database.Database) ([]models.Task, error)
	FindByDate(db *database.Database, date string) ([]models.Task, error)
	Update(db *database.Database, id string, updates TaskUpdate) (models.Task, error)
	Delete(db *database.Database, id string) (models.Task, error)
}

type TaskService struct {
	maxTasksPerDay int
}

func NewTaskService(maxTasksPerDay int) *TaskService {
	if maxTasksPerDay < 1 {
		maxTasksPerDay = 1
	}
	return &TaskService{maxTasksPerDay: maxTasksPerDay}
}

// Create validates the date against the local today, enforces the daily cap
// and inserts the task. The count check and the insert are not wrapped in a
// transaction, so two concurrent creates for the same date can both pass the
// check and overshoot the cap.
func (s *TaskService) Create(db *database.Database, description string, order *int, date string) (models.Task, error) {
	today := dates.Today()
	if date < today {
		return models.Task{}, fmt.Errorf("%w: %s is before %s; only today or future dates are allowed", ErrPastDate, date, today)
	}

	existing, err := s.FindByDate(db, date)
	if err != nil {
		return models.Task{}, err
	}

	if len(existing) >= s.maxTasksPerDay {
		return models.Task{}, fmt.Errorf("%w: daily limit of %d tasks reached for %s", ErrDailyLimitReached, s.maxTasksPerDay, date)
	}

	finalOrder := 1
	if order != nil {
		finalOrder = *order
	} else {
		// Next sequential number after the highest existing order,
		// regardless of gaps.
		for _, task := range existing {
			if task.Order >= finalOrder {
				finalOrder = task.Order + 1
			}
		}
	}

	task := models.Task{
		ID:          uuid.New(),
		Description: description,
		Order:       finalOrder,
		Date:        date,
	}

	if err := db.DB.Create(&task).Error; err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// Find applies the filter-combination policy: no date bounds default to
// exactly today's local date, a single bound is a one-sided inclusive range,
// both bounds form a closed range. A completion filter is ANDed in. Results
// come back most recent day first, tasks within a day in their intended
// sequence.
func (s *TaskService) Find(db *database.Database, filter TaskFilter) ([]models.Task, error) {
	query := db.DB.Model(&models.Task{})

	if filter.StartDate == "" && filter.EndDate == "" {
		query = query.Where("date = ?", dates.Today())
	} else {
		if filter.StartDate != "" {
			query = query.Where("date >= ?", filter.StartDate)
		}
		if filter.EndDate != "" {
			query = query.Where("date <= ?", filter.EndDate)
		}
	}

	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultFindLimit
	}

	var tasks []models.Task
	result := query.
		Order("date DESC").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Limit(limit).
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

func (s *TaskService) FindAll(db *database.Database) ([]models.Task, error) {
	var tasks []models.Task
	result := db.DB.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

func (s *TaskService) FindByDate(db *database.Database, date string) ([]models.Task, error) {
	var tasks []models.Task
	result := db.DB.
		Where("date = ?", date).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Update applies the non-nil fields to the matching task. A changed date is
// not re-validated against the past-date or daily-cap rules.
func (s *TaskService) Update(db *database.Database, id string, updates TaskUpdate) (models.Task, error) {
	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	values := map[string]interface{}{}
	if updates.Description != nil {
		values["description"] = *updates.Description
	}
	if updates.Completed != nil {
		values["completed"] = *updates.Completed
	}
	if updates.Order != nil {
		values["order"] = *updates.Order
	}
	if updates.Date != nil {
		values["date"] = *updates.Date
	}

	if len(values) == 0 {
		return task, nil
	}

	if err := db.DB.Model(&task).Updates(values).Error; err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskService) Delete(db *database.Database, id string) (models.Task, error) {
	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	if err := db.DB.Delete(&task).Error; err != nil {
		return models.Task{}, err
	}

	return task, nil
}

var TaskServiceInstance TaskServiceInterface = NewTaskService(3)
