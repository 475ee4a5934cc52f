package service_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tasknest/config"
	gistMocks "tasknest/infras/gist/mocks"
	"tasknest/infras/otel/mocks"
	s3Mocks "tasknest/infras/s3/mocks"
	"tasknest/internal/domains/export/service"
	projectMocks "tasknest/internal/domains/project/mocks"
	projectModel "tasknest/internal/domains/project/model"
	todoMocks "tasknest/internal/domains/todo/mocks"
	todoModel "tasknest/internal/domains/todo/model"
	"tasknest/shared/constant"
	"tasknest/shared/failure"
	"tasknest/shared/identity"
)

const projectID = "0c8f6f4e-57a1-4c55-9a3b-1b1d3f8d2a01"

var owner = identity.Identity{UserID: "user-1"}

type fixture struct {
	svc      service.Export
	projects *projectMocks.MockProject
	todos    *todoMocks.MockTodo
	gist     *gistMocks.MockGist
	s3       *s3Mocks.MockS3
	dir      string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Export.Directory = filepath.Join(t.TempDir(), "exports")
	cfg.External.S3.Directory = "exports"

	f := fixture{
		projects: projectMocks.NewMockProject(ctrl),
		todos:    todoMocks.NewMockTodo(ctrl),
		gist:     gistMocks.NewMockGist(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
		dir:      cfg.App.Export.Directory,
	}
	f.svc = service.New(f.projects, f.todos, f.gist, f.s3, cfg, mocks.NewOtel())

	return f
}

func (f fixture) expectProject() {
	f.projects.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(projectModel.Project{ID: projectID, Title: "Project 1", OwnerID: owner.UserID}, nil)
	f.todos.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]todoModel.Todo{
			{Description: "Todo 1", Status: todoModel.StatusPending},
			{Description: "Todo 2", Status: todoModel.StatusDone},
		}, nil)
}

func TestExportService_CreateMarkdown(t *testing.T) {
	f := newFixture(t)
	f.expectProject()

	f.gist.EXPECT().
		Publish(gomock.Any(), "project-1.md", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, content string) (string, error) {
			assert.Contains(t, content, "Summary: 1 / 2 todos completed")

			return "https://gist.github.com/some-gist-url", nil
		})
	f.s3.EXPECT().Enabled().Return(false)

	res, err := f.svc.CreateMarkdown(context.Background(), owner, projectID)
	require.NoError(t, err)

	assert.Equal(t, "https://gist.github.com/some-gist-url", res.URL)
	assert.Empty(t, res.ArchiveURL)

	written, err := os.ReadFile(filepath.Join(f.dir, "project-1.md"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "# Project 1")
	assert.Contains(t, string(written), "- [x] Todo 2")
}

func TestExportService_CreateMarkdownArchives(t *testing.T) {
	f := newFixture(t)
	f.expectProject()

	f.gist.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://gist.github.com/x", nil)
	f.s3.EXPECT().Enabled().Return(true)
	f.s3.EXPECT().
		UploadFileBytes(gomock.Any(), "exports/user-1", "project-1.md", constant.ContentTypeMarkdown, gomock.Any()).
		Return("https://cdn.example.com/exports/user-1/project-1.md", nil)

	res, err := f.svc.CreateMarkdown(context.Background(), owner, projectID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/exports/user-1/project-1.md", res.ArchiveURL)
}

func TestExportService_CreateMarkdownFailures(t *testing.T) {
	t.Run("project not owned", func(t *testing.T) {
		f := newFixture(t)

		f.projects.EXPECT().Get(gomock.Any(), gomock.Any()).Return(projectModel.Project{}, nil)

		_, err := f.svc.CreateMarkdown(context.Background(), owner, projectID)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})

	t.Run("missing project id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateMarkdown(context.Background(), owner, "")
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})

	t.Run("gist failure", func(t *testing.T) {
		f := newFixture(t)
		f.expectProject()

		f.gist.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("boom"))

		_, err := f.svc.CreateMarkdown(context.Background(), owner, projectID)
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
