package model

import "tasknest/shared/model"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID          = "id"
	FieldProjectID   = "project_id"
	FieldDescription = "description"
	FieldStatus      = "status"
)

const (
	StatusPending = "pending"
	StatusDone    = "done"
)

type Todo struct {
	ID          string `db:"id"`
	ProjectID   string `db:"project_id"`
	Description string `db:"description"`
	Status      string `db:"status"`
	model.Metadata
}

func (t Todo) IsDone() bool {
	return t.Status == StatusDone
}
