package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/adanyl0v/go-tasks/internal/models"
)

// taskJSON is the wire form of a task in the durable slot: exactly three
// fields, no version marker.
type taskJSON struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

var errMalformedTaskList = errors.New("malformed task list")

// encodeTasks serializes the list for the durable slot. An empty list
// encodes as [] so the stored value always parses back to a list.
func encodeTasks(tasks models.TaskList) ([]byte, error) {
	out := make([]taskJSON, len(tasks))
	for i, task := range tasks {
		out[i] = taskJSON{
			ID:        task.ID,
			Text:      task.Text,
			Completed: task.Completed,
		}
	}
	return json.Marshal(out)
}

// decodeTasks parses a stored value. Anything structurally off, such as a
// non-array value, unknown fields, trailing content, or duplicate or empty
// IDs, fails, and the caller treats the value as absent.
func decodeTasks(value []byte) (models.TaskList, error) {
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.DisallowUnknownFields()

	var raw []taskJSON
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedTaskList, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing content", errMalformedTaskList)
	}

	tasks := make(models.TaskList, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, task := range raw {
		if task.ID == "" {
			return nil, fmt.Errorf("%w: task %d has no id", errMalformedTaskList, i)
		}
		if _, ok := seen[task.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate id %q", errMalformedTaskList, task.ID)
		}
		seen[task.ID] = struct{}{}

		tasks[i] = models.Task{
			ID:        task.ID,
			Text:      task.Text,
			Completed: task.Completed,
		}
	}
	return tasks, nil
}
