package model

import "tasknest/shared/model"

const (
	TableName  = "projects"
	EntityName = "project"

	FieldID      = "id"
	FieldTitle   = "title"
	FieldOwnerID = "owner_id"
)

type Project struct {
	ID      string `db:"id"`
	Title   string `db:"title"`
	OwnerID string `db:"owner_id"`
	model.Metadata
}
