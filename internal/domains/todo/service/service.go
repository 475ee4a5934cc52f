package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"tasknest/infras/otel"
	projectRepo "tasknest/internal/domains/project/repository"
	"tasknest/internal/domains/todo/model"
	"tasknest/internal/domains/todo/model/dto"
	"tasknest/internal/domains/todo/repository"
	"tasknest/shared"
	"tasknest/shared/constant"
	gDto "tasknest/shared/dto"
	"tasknest/shared/failure"
	"tasknest/shared/identity"
	gRepo "tasknest/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	labelProjectID = "Project ID"
	labelTodoID    = "Todo ID"
	entityProject  = "Project"
	entityTodo     = "Todo"

	msgProjectNotFound = "Project not found."
	msgTodoNotFound    = "Todo not found."
	msgDuplicateTodo   = "A todo with this description already exists in this project."
	msgEmptyUpdate     = "Update request cannot be empty."
)

type Todo interface {
	Create(ctx context.Context, owner identity.Identity, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context, owner identity.Identity, projectID string) (dto.GetTodosResponse, error)
	Mark(ctx context.Context, owner identity.Identity, todoID string) (dto.TodoResponse, error)
	Update(ctx context.Context, owner identity.Identity, todoID string, req dto.UpdateTodoRequest) (dto.TodoResponse, error)
	Delete(ctx context.Context, owner identity.Identity, todoID string) error
}

type serviceImpl struct {
	repo        repository.Todo
	projectRepo projectRepo.Project
	otel        otel.Otel
}

func New(repo repository.Todo, projectRepo projectRepo.Project, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:        repo,
		projectRepo: projectRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, owner identity.Identity, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.requireProject(ctx, owner, req.ProjectID); err != nil {
		return res, err
	}

	duplicate, err := s.repo.Exist(ctx, repository.FilterByDescription(req.ProjectID, req.Description, constant.Empty))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return res, fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if duplicate {
		return res, failure.Conflict(msgDuplicateTodo)
	}

	todo := req.ToModel(owner.UserID)

	if err = s.repo.Insert(ctx, todo); err != nil {
		if errors.Is(err, gRepo.ErrUniqueViolation) {
			return res, failure.Conflict(msgDuplicateTodo)
		}

		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, owner identity.Identity, projectID string) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.requireProject(ctx, owner, projectID); err != nil {
		return res, err
	}

	todos, err := s.repo.GetAll(ctx, gDto.InsertionOrder(model.TableName), repository.FilterByProject(projectID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	res.FromModels(todos)

	return res, nil
}

func (s *serviceImpl) Mark(ctx context.Context, owner identity.Identity, todoID string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Mark")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = shared.RequireID(todoID, labelTodoID, entityTodo); err != nil {
		return res, err
	}

	filter := repository.FilterOwned(todoID, owner.UserID)

	toggled, err := s.repo.ToggleStatus(ctx, filter, owner.UserID)
	if err != nil {
		log.Error().Err(err).Msg("failed to toggle todo status")

		return res, fmt.Errorf("failed to toggle todo status: %w", err)
	}

	if !toggled {
		return res, failure.NotFound(msgTodoNotFound)
	}

	return s.getOwned(ctx, filter)
}

func (s *serviceImpl) Update(ctx context.Context, owner identity.Identity, todoID string, req dto.UpdateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = shared.RequireID(todoID, labelTodoID, entityTodo); err != nil {
		return res, err
	}

	filter := repository.FilterOwned(todoID, owner.UserID)

	current, err := s.getOwned(ctx, filter)
	if err != nil {
		return res, err
	}

	if req.IsEmpty() {
		return res, failure.BadRequestFromString(msgEmptyUpdate)
	}

	if req.Description != nil && *req.Description != current.Description {
		duplicate, existErr := s.repo.Exist(ctx, repository.FilterByDescription(current.ProjectID, *req.Description, todoID))
		if existErr != nil {
			log.Error().Err(existErr).Msg("failed to check if todo exists")

			return res, fmt.Errorf("failed to check if todo exists: %w", existErr)
		}

		if duplicate {
			return res, failure.Conflict(msgDuplicateTodo)
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, owner.UserID), filter); err != nil {
		if errors.Is(err, gRepo.ErrUniqueViolation) {
			return res, failure.Conflict(msgDuplicateTodo)
		}

		log.Error().Err(err).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	return s.getOwned(ctx, filter)
}

func (s *serviceImpl) Delete(ctx context.Context, owner identity.Identity, todoID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = shared.RequireID(todoID, labelTodoID, entityTodo); err != nil {
		return err
	}

	filter := repository.FilterOwned(todoID, owner.UserID)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgTodoNotFound)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}

// requireProject fails with 404 unless projectID names a project of owner.
func (s *serviceImpl) requireProject(ctx context.Context, owner identity.Identity, projectID string) error {
	if err := shared.RequireID(projectID, labelProjectID, entityProject); err != nil {
		return err
	}

	owned, err := s.projectRepo.Exist(ctx, projectRepo.FilterOwned(projectID, owner.UserID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check project ownership")

		return fmt.Errorf("failed to check project ownership: %w", err)
	}

	if !owned {
		return failure.NotFound(msgProjectNotFound)
	}

	return nil
}

func (s *serviceImpl) getOwned(ctx context.Context, filter gDto.FilterGroup) (res dto.TodoResponse, err error) {
	todo, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == constant.Empty {
		return res, failure.NotFound(msgTodoNotFound)
	}

	res.FromModel(todo)

	return res, nil
}
