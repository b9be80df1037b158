package models

type Task struct {
	ID        string
	Text      string
	Completed bool
}

// TaskList preserves insertion order; the order is the display order.
type TaskList []Task
