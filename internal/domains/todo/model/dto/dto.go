package dto

import (
	"tasknest/internal/domains/todo/model"
	gDto "tasknest/shared/dto"
	gModel "tasknest/shared/model"
	"tasknest/shared/sanitizer"
	"tasknest/shared/timezone"

	"github.com/google/uuid"
)

type CreateTodoRequest struct {
	ProjectID   string `json:"projectId"   validate:"required"`
	Description string `json:"description" validate:"required,notblank,max=255"`
}

func (c *CreateTodoRequest) Sanitize() {
	sanitizer.Strings(&c.ProjectID, &c.Description)
}

func (c *CreateTodoRequest) ToModel(user string) model.Todo {
	return model.Todo{
		ID:          uuid.NewString(),
		ProjectID:   c.ProjectID,
		Description: c.Description,
		Status:      model.StatusPending,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateTodoRequest is a partial update: nil fields are left untouched.
type UpdateTodoRequest struct {
	Description *string `db:"description" json:"description" validate:"omitempty,notblank,max=255"`
	Status      *string `db:"status"      json:"status"      validate:"omitempty,oneof=pending done"`
}

func (u *UpdateTodoRequest) Sanitize() {
	sanitizer.Strings(u.Description, u.Status)
}

func (u *UpdateTodoRequest) IsEmpty() bool {
	return u.Description == nil && u.Status == nil
}

type TodoResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.ProjectID = model.ProjectID
	r.Description = model.Description
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetTodosResponse struct {
	Todos []TodoResponse `json:"todos"`
}

func (r *GetTodosResponse) FromModels(models []model.Todo) {
	r.Todos = make([]TodoResponse, len(models))
	for i, mod := range models {
		r.Todos[i].FromModel(mod)
	}
}
