package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-tasks/internal/models"
)

type taskResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func newTaskResponse(task models.Task) taskResponse {
	return taskResponse{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
	}
}

// newTaskListResponse renders the whole list. Every mutation responds with
// it so the caller can redraw from scratch instead of patching.
func newTaskListResponse(tasks models.TaskList) []taskResponse {
	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}
	return response
}

type taskTextRequest struct {
	Text string `json:"text"`
}

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, newTaskListResponse(h.tasks.Tasks()))
}

func (h *handlerImpl) HandleAddTask(c *gin.Context) {
	var req taskTextRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	tasks := h.tasks.Add(req.Text)
	c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	var req taskTextRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	tasks := h.tasks.Update(c.Param("id"), req.Text)
	c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

func (h *handlerImpl) HandleToggleTask(c *gin.Context) {
	tasks := h.tasks.ToggleCompletion(c.Param("id"))
	c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	tasks := h.tasks.Delete(c.Param("id"))
	c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

type editResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (h *handlerImpl) HandleBeginEdit(c *gin.Context) {
	taskID := c.Param("id")
	task, ok := h.tasks.BeginEdit(taskID)
	if !ok {
		h.logger.Warn().
			Str("task_id", taskID).
			Msg("task not found")
		abort(c, newNotFoundError("task not found"))
		return
	}

	c.JSON(http.StatusOK, editResponse{ID: task.ID, Text: task.Text})
}

func (h *handlerImpl) HandleEditState(c *gin.Context) {
	task, ok := h.tasks.Editing()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"editing": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"editing": editResponse{ID: task.ID, Text: task.Text}})
}

func (h *handlerImpl) HandleCancelEdit(c *gin.Context) {
	h.tasks.CancelEdit()
	c.Status(http.StatusNoContent)
}
