package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasks/internal/models"
	"github.com/adanyl0v/go-tasks/internal/storage"
)

// failureBufferSize bounds how many unread failures are kept before new
// ones are dropped.
const failureBufferSize = 16

type taskServiceImpl struct {
	logger zerolog.Logger
	slot   storage.Slot

	mu     sync.Mutex
	tasks  models.TaskList
	editID string
	loaded bool

	saver    *saver
	failures chan Failure
}

func NewTaskService(
	logger zerolog.Logger,
	slot storage.Slot,
	saveTimeout time.Duration,
) TaskService {
	s := &taskServiceImpl{
		logger:   logger,
		slot:     slot,
		failures: make(chan Failure, failureBufferSize),
	}
	s.saver = newSaver(logger, slot, saveTimeout, s.report)
	return s
}

func (s *taskServiceImpl) Load(ctx context.Context) models.TaskList {
	s.mu.Lock()
	if s.loaded {
		defer s.mu.Unlock()
		s.logger.Warn().Msg("tasks already loaded")
		return snapshot(s.tasks)
	}
	s.loaded = true
	s.mu.Unlock()

	tasks := s.readSlot(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	return snapshot(s.tasks)
}

// readSlot fetches and parses the stored list, falling back to an empty
// list on any failure.
func (s *taskServiceImpl) readSlot(ctx context.Context) models.TaskList {
	value, err := s.slot.Get(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Info().Msg("no saved tasks, starting empty")
			return nil
		}

		s.logger.Error().
			Err(err).
			Msg("failed to read saved tasks")
		s.report(Failure{Kind: FailureRead, Err: err, At: time.Now()})
		return nil
	}

	tasks, err := decodeTasks(value)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to parse saved tasks")
		s.report(Failure{Kind: FailureParse, Err: err, At: time.Now()})
		return nil
	}

	s.logger.Info().
		Int("count", len(tasks)).
		Msg("loaded tasks")
	return tasks
}

func (s *taskServiceImpl) Tasks() models.TaskList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.tasks)
}

func (s *taskServiceImpl) Add(text string) models.TaskList {
	trimmed := strings.TrimSpace(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if trimmed == "" {
		s.logger.Debug().Msg("empty task text, nothing to add")
		return snapshot(s.tasks)
	}

	if s.editID != "" {
		id := s.editID
		s.editID = ""
		s.updateTextLocked(id, trimmed)
		return snapshot(s.tasks)
	}

	task := models.Task{
		ID:   uuid.Must(uuid.NewV7()).String(),
		Text: trimmed,
	}
	s.tasks = append(s.tasks, task)
	s.persistLocked()

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("added task")
	return snapshot(s.tasks)
}

func (s *taskServiceImpl) Update(id, text string) models.TaskList {
	trimmed := strings.TrimSpace(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if trimmed == "" {
		s.logger.Debug().
			Str("task_id", id).
			Msg("empty task text, keeping current")
		return snapshot(s.tasks)
	}

	if s.updateTextLocked(id, trimmed) && s.editID == id {
		s.editID = ""
	}
	return snapshot(s.tasks)
}

// updateTextLocked replaces the text of the task with the given id and
// reports whether the id was known. Equal text counts as applied but is
// not persisted again.
func (s *taskServiceImpl) updateTextLocked(id, text string) bool {
	i := indexOf(s.tasks, id)
	if i < 0 {
		s.logger.Warn().
			Str("task_id", id).
			Msg("task not found")
		return false
	}
	if s.tasks[i].Text == text {
		return true
	}

	s.tasks[i].Text = text
	s.persistLocked()

	s.logger.Info().
		Str("task_id", id).
		Msg("updated task")
	return true
}

func (s *taskServiceImpl) ToggleCompletion(id string) models.TaskList {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.tasks, id)
	if i < 0 {
		s.logger.Warn().
			Str("task_id", id).
			Msg("task not found")
		return snapshot(s.tasks)
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	s.persistLocked()

	s.logger.Info().
		Str("task_id", id).
		Bool("completed", s.tasks[i].Completed).
		Msg("toggled task")
	return snapshot(s.tasks)
}

func (s *taskServiceImpl) Delete(id string) models.TaskList {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.tasks, id)
	if i < 0 {
		s.logger.Warn().
			Str("task_id", id).
			Msg("task not found")
		return snapshot(s.tasks)
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	if s.editID == id {
		s.editID = ""
	}
	s.persistLocked()

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return snapshot(s.tasks)
}

func (s *taskServiceImpl) BeginEdit(id string) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.tasks, id)
	if i < 0 {
		s.logger.Warn().
			Str("task_id", id).
			Msg("task not found")
		return models.Task{}, false
	}

	s.editID = id
	s.logger.Debug().
		Str("task_id", id).
		Msg("editing task")
	return s.tasks[i], true
}

func (s *taskServiceImpl) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editID == "" {
		return
	}
	s.logger.Debug().
		Str("task_id", s.editID).
		Msg("cancelled edit")
	s.editID = ""
}

func (s *taskServiceImpl) Editing() (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editID == "" {
		return models.Task{}, false
	}
	i := indexOf(s.tasks, s.editID)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

func (s *taskServiceImpl) Failures() <-chan Failure {
	return s.failures
}

func (s *taskServiceImpl) Close(ctx context.Context) error {
	return s.saver.close(ctx)
}

// persistLocked hands the current list to the background saver.
func (s *taskServiceImpl) persistLocked() {
	value, err := encodeTasks(s.tasks)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to encode tasks")
		s.report(Failure{Kind: FailureWrite, Err: err, At: time.Now()})
		return
	}
	s.saver.enqueue(value)
}

func (s *taskServiceImpl) report(f Failure) {
	select {
	case s.failures <- f:
	default:
	}
}

func indexOf(tasks models.TaskList, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func snapshot(tasks models.TaskList) models.TaskList {
	out := make(models.TaskList, len(tasks))
	copy(out, tasks)
	return out
}
