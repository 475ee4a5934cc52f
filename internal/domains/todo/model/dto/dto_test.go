package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasknest/internal/domains/todo/model"
	"tasknest/internal/domains/todo/model/dto"
	gModel "tasknest/shared/model"
	"tasknest/shared/validator"
)

func TestCreateTodoRequest_ToModel(t *testing.T) {
	req := dto.CreateTodoRequest{ProjectID: "p-1", Description: "buy milk"}

	todo := req.ToModel("user-1")

	assert.NotEmpty(t, todo.ID)
	assert.Equal(t, "p-1", todo.ProjectID)
	assert.Equal(t, "buy milk", todo.Description)
	assert.Equal(t, model.StatusPending, todo.Status)
	assert.Equal(t, "user-1", todo.CreatedBy)
	assert.Equal(t, todo.CreatedAt, todo.ModifiedAt)
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateTodoRequest
		wantErr bool
	}{
		{name: "valid", req: dto.CreateTodoRequest{ProjectID: "p-1", Description: "buy milk"}},
		{name: "missing project", req: dto.CreateTodoRequest{Description: "buy milk"}, wantErr: true},
		{name: "blank description", req: dto.CreateTodoRequest{ProjectID: "p-1", Description: "   "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	done := "done"
	archived := "archived"

	require.NoError(t, validator.ValidateStruct(&dto.UpdateTodoRequest{Status: &done}))
	assert.Error(t, validator.ValidateStruct(&dto.UpdateTodoRequest{Status: &archived}))
}

func TestUpdateTodoRequest_SanitizeAndIsEmpty(t *testing.T) {
	req := dto.UpdateTodoRequest{}
	req.Sanitize()
	assert.True(t, req.IsEmpty())

	desc := " <b>walk</b> dog "
	req.Description = &desc
	req.Sanitize()

	assert.False(t, req.IsEmpty())
	assert.Equal(t, "walk dog", *req.Description)
}

func TestGetTodosResponse_FromModels(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	var res dto.GetTodosResponse
	res.FromModels([]model.Todo{
		{ID: "t-1", ProjectID: "p-1", Description: "a", Status: model.StatusDone, Metadata: gModel.NewMetadata("user-1", created)},
	})

	require.Len(t, res.Todos, 1)
	assert.Equal(t, "t-1", res.Todos[0].ID)
	assert.Equal(t, model.StatusDone, res.Todos[0].Status)
	assert.NotEmpty(t, res.Todos[0].CreatedAt)

	res.FromModels(nil)
	assert.NotNil(t, res.Todos)
	assert.Empty(t, res.Todos)
}
