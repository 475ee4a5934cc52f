package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"tasknest/config"
	"tasknest/infras/otel"
	"tasknest/internal/domains/project/model"
	"tasknest/internal/domains/project/model/dto"
	"tasknest/internal/domains/project/repository"
	todoRepo "tasknest/internal/domains/todo/repository"
	"tasknest/shared"
	"tasknest/shared/cache"
	"tasknest/shared/constant"
	gDto "tasknest/shared/dto"
	"tasknest/shared/failure"
	"tasknest/shared/identity"
	gRepo "tasknest/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cachePrefix   = "project"
	cacheKeyAll   = "all"
	labelID       = "Project ID"
	entityProject = "Project"

	msgNotFound      = "Project not found."
	msgDuplicateName = "Project with this name already exists"
)

type Project interface {
	Create(ctx context.Context, owner identity.Identity, req dto.CreateProjectRequest) (dto.ProjectResponse, error)
	GetAll(ctx context.Context, owner identity.Identity) (dto.GetProjectsResponse, error)
	Get(ctx context.Context, owner identity.Identity, projectID string) (dto.ProjectResponse, error)
	Update(ctx context.Context, owner identity.Identity, projectID string, req dto.UpdateProjectRequest) (dto.ProjectResponse, error)
	Delete(ctx context.Context, owner identity.Identity, projectID string) error
}

type serviceImpl struct {
	repo     repository.Project
	todoRepo todoRepo.Todo
	tx       gRepo.Transactor
	cache    cache.RedisCache
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	repo repository.Project,
	todoRepo todoRepo.Todo,
	tx gRepo.Transactor,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Project {
	return &serviceImpl{
		repo:     repo,
		todoRepo: todoRepo,
		tx:       tx,
		cache:    cache,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, owner identity.Identity, req dto.CreateProjectRequest) (res dto.ProjectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".project.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.checkTitle(ctx, owner, req.Title, constant.Empty); err != nil {
		return res, err
	}

	project := req.ToModel(owner.UserID)

	if err = s.repo.Insert(ctx, project); err != nil {
		if errors.Is(err, gRepo.ErrUniqueViolation) {
			return res, failure.BadRequestFromString(msgDuplicateName)
		}

		log.Error().Err(err).Msg("failed to create project")

		return res, fmt.Errorf("failed to create project: %w", err)
	}

	s.invalidate(ctx, owner)

	res.FromModel(project)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, owner identity.Identity) (res dto.GetProjectsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".project.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.BuildCacheKey(cachePrefix, owner.UserID, cacheKeyAll)
	if s.fromCache(ctx, key, &res) {
		return res, nil
	}

	projects, err := s.repo.GetAll(ctx, gDto.InsertionOrder(model.TableName), repository.FilterByOwner(owner.UserID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get projects")

		return res, fmt.Errorf("failed to get projects: %w", err)
	}

	res.FromModels(projects)
	s.toCache(ctx, key, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, owner identity.Identity, projectID string) (res dto.ProjectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".project.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = shared.RequireID(projectID, labelID, entityProject); err != nil {
		return res, err
	}

	key := shared.BuildCacheKey(cachePrefix, owner.UserID, projectID)
	if s.fromCache(ctx, key, &res) {
		return res, nil
	}

	res, err = s.getOwned(ctx, owner, projectID)
	if err != nil {
		return res, err
	}

	s.toCache(ctx, key, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, owner identity.Identity, projectID string, req dto.UpdateProjectRequest) (res dto.ProjectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".project.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = shared.RequireID(projectID, labelID, entityProject); err != nil {
		return res, err
	}

	current, err := s.getOwned(ctx, owner, projectID)
	if err != nil {
		return res, err
	}

	if current.Title == req.Title {
		return current, nil
	}

	if err = s.checkTitle(ctx, owner, req.Title, projectID); err != nil {
		return res, err
	}

	err = s.repo.Update(ctx, shared.TransformFields(req, owner.UserID), repository.FilterOwned(projectID, owner.UserID))
	if err != nil {
		if errors.Is(err, gRepo.ErrUniqueViolation) {
			return res, failure.BadRequestFromString(msgDuplicateName)
		}

		log.Error().Err(err).Msg("failed to update project")

		return res, fmt.Errorf("failed to update project: %w", err)
	}

	s.invalidate(ctx, owner)

	return s.getOwned(ctx, owner, projectID)
}

// Delete removes the project together with its todos in one transaction.
func (s *serviceImpl) Delete(ctx context.Context, owner identity.Identity, projectID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".project.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = shared.RequireID(projectID, labelID, entityProject); err != nil {
		return err
	}

	filter := repository.FilterOwned(projectID, owner.UserID)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if project exists")

		return fmt.Errorf("failed to check if project exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgNotFound)
	}

	err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.todoRepo.DeleteTx(ctx, tx, todoRepo.FilterByProject(projectID)); err != nil {
			return fmt.Errorf("failed to delete project todos: %w", err)
		}

		if err := s.repo.DeleteTx(ctx, tx, filter); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("project_id", projectID).Msg("failed to delete project")

		return err
	}

	s.invalidate(ctx, owner)

	return nil
}

func (s *serviceImpl) getOwned(ctx context.Context, owner identity.Identity, projectID string) (res dto.ProjectResponse, err error) {
	project, err := s.repo.Get(ctx, repository.FilterOwned(projectID, owner.UserID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get project")

		return res, fmt.Errorf("failed to get project: %w", err)
	}

	if project.ID == constant.Empty {
		return res, failure.NotFound(msgNotFound)
	}

	res.FromModel(project)

	return res, nil
}

func (s *serviceImpl) checkTitle(ctx context.Context, owner identity.Identity, title, excludeID string) error {
	duplicate, err := s.repo.Exist(ctx, repository.FilterByTitle(owner.UserID, title, excludeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check project title")

		return fmt.Errorf("failed to check project title: %w", err)
	}

	if duplicate {
		return failure.BadRequestFromString(msgDuplicateName)
	}

	return nil
}

func (s *serviceImpl) fromCache(ctx context.Context, key string, value any) bool {
	err := s.cache.Get(ctx, key, value)
	if err == nil {
		return true
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("failed to read project cache")
	}

	return false
}

func (s *serviceImpl) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to save project cache")
	}
}

// invalidate drops every cached entry of owner. Errors are logged only.
func (s *serviceImpl) invalidate(ctx context.Context, owner identity.Identity) {
	prefix := shared.BuildCacheKey(cachePrefix, owner.UserID) + ":"

	if err := s.cache.Clear(ctx, prefix); err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("failed to clear project cache")
	}
}
