package routes

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mit-tracker/mittrack/database"
	"mit-tracker/mittrack/services"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type CreateTaskRequest struct {
	Description string `json:"description" binding:"required"`
	Order       *int   `json:"order"`
	Date        string `json:"date" binding:"required"`
}

type UpdateTaskRequest struct {
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Order       *int    `json:"order"`
	Date        *string `json:"date"`
}

type FindTasksQuery struct {
	Date      string `form:"date"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Completed *bool  `form:"completed"`
	Limit     int    `form:"limit"`
}

func RegisterTaskRoutes(group *gin.RouterGroup, db *database.Database, taskService services.TaskServiceInterface) {
	group.GET("/tasks", func(c *gin.Context) { GetTasks(c, db, taskService) })
	group.POST("/tasks", func(c *gin.Context) { CreateTask(c, db, taskService) })
	group.PUT("/tasks/:id", func(c *gin.Context) { UpdateTask(c, db, taskService) })
	group.DELETE("/tasks/:id", func(c *gin.Context) { DeleteTask(c, db, taskService) })
}

func GetTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	var query FindTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, date := range []string{query.Date, query.StartDate, query.EndDate} {
		if date != "" && !dateRe.MatchString(date) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be in YYYY-MM-DD format"})
			return
		}
	}

	// An exact date wins over range filters.
	if query.Date != "" {
		tasks, err := taskService.FindByDate(db, query.Date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, tasks)
		return
	}

	if query.Limit != 0 && (query.Limit < 1 || query.Limit > 10000) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 10000"})
		return
	}

	tasks, err := taskService.Find(db, services.TaskFilter{
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Completed: query.Completed,
		Limit:     query.Limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func CreateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !dateRe.MatchString(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	task, err := taskService.Create(db, req.Description, req.Order, req.Date)
	if err != nil {
		if errors.Is(err, services.ErrPastDate) || errors.Is(err, services.ErrDailyLimitReached) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, task)
}

func UpdateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID format"})
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Date != nil && !dateRe.MatchString(*req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	task, err := taskService.Update(db, id, services.TaskUpdate{
		Description: req.Description,
		Completed:   req.Completed,
		Order:       req.Order,
		Date:        req.Date,
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

func DeleteTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID format"})
		return
	}

	task, err := taskService.Delete(db, id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}
