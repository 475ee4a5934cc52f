package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"tasknest/config"
	"tasknest/infras/gist"
	"tasknest/infras/otel"
	"tasknest/infras/s3"
	"tasknest/internal/domains/export/model/dto"
	projectRepo "tasknest/internal/domains/project/repository"
	todoModel "tasknest/internal/domains/todo/model"
	todoRepo "tasknest/internal/domains/todo/repository"
	"tasknest/shared"
	"tasknest/shared/constant"
	gDto "tasknest/shared/dto"
	"tasknest/shared/failure"
	"tasknest/shared/identity"

	"github.com/rs/zerolog/log"
)

const (
	fileExtension = ".md"
	dirPerm       = 0o755
	filePerm      = 0o644

	msgProjectNotFound = "Project not found."
)

type Export interface {
	CreateMarkdown(ctx context.Context, owner identity.Identity, projectID string) (dto.ExportResponse, error)
}

type serviceImpl struct {
	projectRepo projectRepo.Project
	todoRepo    todoRepo.Todo
	gist        gist.Gist
	s3          s3.S3
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	projectRepo projectRepo.Project,
	todoRepo todoRepo.Todo,
	gist gist.Gist,
	s3 s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Export {
	return &serviceImpl{
		projectRepo: projectRepo,
		todoRepo:    todoRepo,
		gist:        gist,
		s3:          s3,
		cfg:         cfg,
		otel:        otel,
	}
}

// CreateMarkdown renders the project summary, keeps a local copy, publishes it as a gist
// and archives it to object storage when enabled. Steps are not rolled back on failure.
func (s *serviceImpl) CreateMarkdown(ctx context.Context, owner identity.Identity, projectID string) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".export.CreateMarkdown")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = shared.RequireID(projectID, "Project ID", "Project"); err != nil {
		return res, err
	}

	project, err := s.projectRepo.Get(ctx, projectRepo.FilterOwned(projectID, owner.UserID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get project")

		return res, fmt.Errorf("failed to get project: %w", err)
	}

	if project.ID == constant.Empty {
		return res, failure.NotFound(msgProjectNotFound)
	}

	todos, err := s.todoRepo.GetAll(ctx, gDto.InsertionOrder(todoModel.TableName), todoRepo.FilterByProject(project.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	content, err := renderMarkdown(project.Title, todos)
	if err != nil {
		return res, err
	}

	fileName := slugify(project.Title) + fileExtension

	if err = s.writeLocal(fileName, content); err != nil {
		return res, err
	}

	res.URL, err = s.gist.Publish(ctx, fileName, "Summary of "+project.Title, string(content))
	if err != nil {
		log.Error().Err(err).Str("project_id", project.ID).Msg("failed to publish gist")

		return res, fmt.Errorf("failed to publish gist: %w", err)
	}

	if !s.s3.Enabled() {
		return res, nil
	}

	directory := path.Join(s.cfg.External.S3.Directory, owner.UserID)

	res.ArchiveURL, err = s.s3.UploadFileBytes(ctx, directory, fileName, constant.ContentTypeMarkdown, content)
	if err != nil {
		log.Error().Err(err).Str("project_id", project.ID).Msg("failed to archive markdown")

		return res, fmt.Errorf("failed to archive markdown: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) writeLocal(fileName string, content []byte) error {
	dir := s.cfg.App.Export.Directory

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("failed to create export directory")

		return fmt.Errorf("failed to create export directory: %w", err)
	}

	target := filepath.Join(dir, fileName)

	if err := os.WriteFile(target, content, filePerm); err != nil {
		log.Error().Err(err).Str("file", target).Msg("failed to write markdown")

		return fmt.Errorf("failed to write markdown: %w", err)
	}

	log.Debug().Str("file", target).Msg("markdown written")

	return nil
}
