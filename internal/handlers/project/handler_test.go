package project_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tasknest/infras/otel/mocks"
	exportDto "tasknest/internal/domains/export/model/dto"
	exportMocks "tasknest/internal/domains/export/service/mocks"
	"tasknest/internal/domains/project/model/dto"
	projectMocks "tasknest/internal/domains/project/service/mocks"
	"tasknest/internal/handlers/project"
	"tasknest/shared/failure"
	"tasknest/shared/identity"
)

const projectID = "0c8f6f4e-57a1-4c55-9a3b-1b1d3f8d2a01"

var caller = identity.Identity{UserID: "user-1", TokenID: "token-1"}

type body struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

type fixture struct {
	router   http.Handler
	projects *projectMocks.MockProject
	export   *exportMocks.MockExport
}

func newFixture(t *testing.T, authenticated bool) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		projects: projectMocks.NewMockProject(ctrl),
		export:   exportMocks.NewMockExport(ctrl),
	}

	handler := project.New(f.projects, f.export, mocks.NewOtel())

	router := chi.NewRouter()
	if authenticated {
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), caller)))
			})
		})
	}

	handler.Router(router)
	f.router = router

	return f
}

func (f fixture) do(t *testing.T, method, target, payload string) (*httptest.ResponseRecorder, body) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var b body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))

	return rec, b
}

func TestAddProject(t *testing.T) {
	f := newFixture(t, true)

	f.projects.EXPECT().
		Create(gomock.Any(), caller, dto.CreateProjectRequest{Title: "Home"}).
		Return(dto.ProjectResponse{ID: projectID, Title: "Home", OwnerID: caller.UserID}, nil)

	rec, b := f.do(t, http.MethodPost, "/project/addproject", `{"title":"<i>Home</i>"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Project added successfully.", b.Message)
	assert.Equal(t, projectID, b.Data["id"])
}

func TestAddProject_MissingTitle(t *testing.T) {
	f := newFixture(t, true)

	rec, _ := f.do(t, http.MethodPost, "/project/addproject", `{"title":"  "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddProject_Duplicate(t *testing.T) {
	f := newFixture(t, true)

	f.projects.EXPECT().
		Create(gomock.Any(), caller, gomock.Any()).
		Return(dto.ProjectResponse{}, failure.BadRequestFromString("Project with this name already exists"))

	rec, b := f.do(t, http.MethodPost, "/project/addproject", `{"title":"Home"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Project with this name already exists", b.Message)
}

func TestGetProjects_WithoutIdentity(t *testing.T) {
	f := newFixture(t, false)

	rec, b := f.do(t, http.MethodGet, "/project/getprojects", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access denied. No token provided.", b.Message)
}

func TestGetProjects(t *testing.T) {
	f := newFixture(t, true)

	f.projects.EXPECT().
		GetAll(gomock.Any(), caller).
		Return(dto.GetProjectsResponse{Projects: []dto.ProjectResponse{{ID: projectID, Title: "Home"}}}, nil)

	rec, b := f.do(t, http.MethodGet, "/project/getprojects", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, b.Data["projects"], 1)
}

func TestGetProjectDetails_NotFound(t *testing.T) {
	f := newFixture(t, true)

	f.projects.EXPECT().
		Get(gomock.Any(), caller, projectID).
		Return(dto.ProjectResponse{}, failure.NotFound("Project not found."))

	rec, b := f.do(t, http.MethodGet, "/project/getprojectdetails?projectId="+projectID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found.", b.Message)
}

func TestEditProject(t *testing.T) {
	f := newFixture(t, true)

	f.projects.EXPECT().
		Update(gomock.Any(), caller, projectID, dto.UpdateProjectRequest{Title: "House"}).
		Return(dto.ProjectResponse{ID: projectID, Title: "House"}, nil)

	rec, b := f.do(t, http.MethodPatch, "/project/editproject?projectId="+projectID, `{"title":"House"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Project edited", b.Message)
	assert.Equal(t, "House", b.Data["title"])
}

func TestDeleteProject_AcceptsPutAndDelete(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			f := newFixture(t, true)

			f.projects.EXPECT().Delete(gomock.Any(), caller, projectID).Return(nil)

			rec, b := f.do(t, method, "/project/deleteproject?projectId="+projectID, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "Project deleted successfully", b.Message)
		})
	}
}

func TestCreateMarkdown(t *testing.T) {
	f := newFixture(t, true)

	f.export.EXPECT().
		CreateMarkdown(gomock.Any(), caller, projectID).
		Return(exportDto.ExportResponse{URL: "https://gist.github.com/some-gist-url"}, nil)

	rec, b := f.do(t, http.MethodGet, "/project/createmd?projectId="+projectID, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Markdown file created", b.Message)
	assert.Equal(t, "https://gist.github.com/some-gist-url", b.Data["url"])
	assert.NotContains(t, b.Data, "archive_url")
}
