package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mit-tracker/mittrack/database"
	"mit-tracker/mittrack/services"
)

const datePattern = `^\d{4}-\d{2}-\d{2}$`

var dateRe = regexp.MustCompile(datePattern)

const (
	minFindLimit = 1
	maxFindLimit = 10000
)

// RegisterTaskTools wires the task tools onto the MCP server.
func RegisterTaskTools(s *server.MCPServer, db *database.Database, taskService services.TaskServiceInterface) {
	s.AddTool(mcp.NewTool("list_tasks",
		mcp.WithDescription("List all tasks or tasks for a specific date"),
		mcp.WithString("date",
			mcp.Description("Date in YYYY-MM-DD format; omit to list every task"),
			mcp.Pattern(datePattern),
		),
	), ListTasksHandler(db, taskService))

	s.AddTool(mcp.NewTool("find_tasks",
		mcp.WithDescription("Find tasks by date range and completion state; defaults to today's tasks"),
		mcp.WithString("start_date",
			mcp.Description("Inclusive lower bound in YYYY-MM-DD format"),
			mcp.Pattern(datePattern),
		),
		mcp.WithString("end_date",
			mcp.Description("Inclusive upper bound in YYYY-MM-DD format"),
			mcp.Pattern(datePattern),
		),
		mcp.WithBoolean("completed",
			mcp.Description("Only tasks with this completion state"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tasks to return (default 100)"),
			mcp.Min(minFindLimit),
			mcp.Max(maxFindLimit),
		),
	), FindTasksHandler(db, taskService))

	s.AddTool(mcp.NewTool("create_task",
		mcp.WithDescription("Create a new task"),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Task description"),
		),
		mcp.WithNumber("order",
			mcp.Description("Position within the day; next sequential number when omitted"),
			mcp.Min(0),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date in YYYY-MM-DD format"),
			mcp.Pattern(datePattern),
		),
	), CreateTaskHandler(db, taskService))

	s.AddTool(mcp.NewTool("update_task",
		mcp.WithDescription("Update a task"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task ID"),
		),
		mcp.WithString("description", mcp.Description("New description")),
		mcp.WithBoolean("completed", mcp.Description("New completion state")),
		mcp.WithNumber("order",
			mcp.Description("New position within the day"),
			mcp.Min(0),
		),
		mcp.WithString("date",
			mcp.Description("New date in YYYY-MM-DD format"),
			mcp.Pattern(datePattern),
		),
	), UpdateTaskHandler(db, taskService))

	s.AddTool(mcp.NewTool("delete_task",
		mcp.WithDescription("Delete a task"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task ID"),
		),
	), DeleteTaskHandler(db, taskService))
}

func ListTasksHandler(db *database.Database, taskService services.TaskServiceInterface) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := request.GetString("date", "")
		if date != "" && !dateRe.MatchString(date) {
			return mcp.NewToolResultError("Date must be in YYYY-MM-DD format"), nil
		}

		var err error
		var tasks interface{}
		if date != "" {
			tasks, err = taskService.FindByDate(db, date)
		} else {
			tasks, err = taskService.FindAll(db)
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error listing tasks: %v", err)), nil
		}

		return jsonResult(tasks)
	}
}

func FindTasksHandler(db *database.Database, taskService services.TaskServiceInterface) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := services.TaskFilter{
			StartDate: request.GetString("start_date", ""),
			EndDate:   request.GetString("end_date", ""),
		}

		if filter.StartDate != "" && !dateRe.MatchString(filter.StartDate) {
			return mcp.NewToolResultError("start_date must be in YYYY-MM-DD format"), nil
		}
		if filter.EndDate != "" && !dateRe.MatchString(filter.EndDate) {
			return mcp.NewToolResultError("end_date must be in YYYY-MM-DD format"), nil
		}

		args := request.GetArguments()
		if _, ok := args["completed"]; ok {
			completed := request.GetBool("completed", false)
			filter.Completed = &completed
		}
		if _, ok := args["limit"]; ok {
			limit := request.GetInt("limit", services.DefaultFindLimit)
			if limit < minFindLimit || limit > maxFindLimit {
				return mcp.NewToolResultError(fmt.Sprintf("limit must be between %d and %d", minFindLimit, maxFindLimit)), nil
			}
			filter.Limit = limit
		}

		tasks, err := taskService.Find(db, filter)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error finding tasks: %v", err)), nil
		}

		return jsonResult(tasks)
	}
}

func CreateTaskHandler(db *database.Database, taskService services.TaskServiceInterface) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description, err := request.RequireString("description")
		if err != nil {
			return mcp.NewToolResultError("Description is required"), nil
		}
		if description == "" {
			return mcp.NewToolResultError("Description is required"), nil
		}

		date, err := request.RequireString("date")
		if err != nil || !dateRe.MatchString(date) {
			return mcp.NewToolResultError("Date must be in YYYY-MM-DD format"), nil
		}

		var order *int
		if _, ok := request.GetArguments()["order"]; ok {
			value := request.GetInt("order", 0)
			if value < 0 {
				return mcp.NewToolResultError("Order must be non-negative"), nil
			}
			order = &value
		}

		task, err := taskService.Create(db, description, order, date)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error creating task: %v", err)), nil
		}

		return jsonResult(task)
	}
}

func UpdateTaskHandler(db *database.Database, taskService services.TaskServiceInterface) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("Task ID is required"), nil
		}
		if _, err := uuid.Parse(id); err != nil {
			return mcp.NewToolResultError("Invalid task ID format"), nil
		}

		args := request.GetArguments()
		var updates services.TaskUpdate

		if _, ok := args["description"]; ok {
			description := request.GetString("description", "")
			if description == "" {
				return mcp.NewToolResultError("Description must not be empty"), nil
			}
			updates.Description = &description
		}
		if _, ok := args["completed"]; ok {
			completed := request.GetBool("completed", false)
			updates.Completed = &completed
		}
		if _, ok := args["order"]; ok {
			order := request.GetInt("order", 0)
			if order < 0 {
				return mcp.NewToolResultError("Order must be non-negative"), nil
			}
			updates.Order = &order
		}
		if _, ok := args["date"]; ok {
			date := request.GetString("date", "")
			if !dateRe.MatchString(date) {
				return mcp.NewToolResultError("Date must be in YYYY-MM-DD format"), nil
			}
			updates.Date = &date
		}

		task, err := taskService.Update(db, id, updates)
		if err != nil {
			if errors.Is(err, services.ErrTaskNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Task with ID %s not found", id)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Error updating task: %v", err)), nil
		}

		return jsonResult(task)
	}
}

func DeleteTaskHandler(db *database.Database, taskService services.TaskServiceInterface) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("Task ID is required"), nil
		}
		if _, err := uuid.Parse(id); err != nil {
			return mcp.NewToolResultError("Invalid task ID format"), nil
		}

		task, err := taskService.Delete(db, id)
		if err != nil {
			if errors.Is(err, services.ErrTaskNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Task with ID %s not found", id)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Error deleting task: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Deleted task: %s", task.ID)), nil
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error encoding response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
