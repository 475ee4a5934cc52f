package project

import (
	"net/http"
	"tasknest/infras/otel"
	exportService "tasknest/internal/domains/export/service"
	"tasknest/internal/domains/project/model/dto"
	"tasknest/internal/domains/project/service"
	"tasknest/shared/constant"
	"tasknest/shared/identity"
	"tasknest/shared/validator"
	"tasknest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	msgProjectAdded    = "Project added successfully."
	msgProjectsFetched = "Projects retrieved successfully."
	msgProjectFetched  = "Project retrieved successfully."
	msgProjectEdited   = "Project edited"
	msgProjectDeleted  = "Project deleted successfully"
	msgMarkdownCreated = "Markdown file created"
)

type Handler struct {
	service service.Project
	export  exportService.Export
	otel    otel.Otel
}

func New(service service.Project, export exportService.Export, otel otel.Otel) Handler {
	return Handler{
		service: service,
		export:  export,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/project", func(r chi.Router) {
		r.Post("/addproject", handler.AddProject)
		r.Get("/getprojects", handler.GetProjects)
		r.Get("/getprojectdetails", handler.GetProjectDetails)
		r.Patch("/editproject", handler.EditProject)
		r.Put("/deleteproject", handler.DeleteProject)
		r.Delete("/deleteproject", handler.DeleteProject)
		r.Get("/createmd", handler.CreateMarkdown)
	})
}

// AddProject creates a project for the caller.
// @Summary Create a project
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Create Project Request"
// @Success 201 {object} response.Body{data=dto.ProjectResponse}
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /project/addproject [post]
// @Security BearerAuth
func (handler *Handler) AddProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddProject")
	defer scope.End()

	owner, err := identity.Require(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.CreateProjectRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, owner, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create project")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Project created by user " + owner.UserID)

	response.WithData(w, http.StatusCreated, msgProjectAdded, res)
}

// GetProjects lists the caller's projects.
// @Summary List projects
// @Tags Project
// @Produce json
// @Success 200 {object} response.Body{data=dto.GetProjectsResponse}
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /project/getprojects [get]
// @Security BearerAuth
func (handler *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjects")
	defer scope.End()

	owner, err := identity.Require(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetAll(ctx, owner)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get projects")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, msgProjectsFetched, res)
}

// GetProjectDetails fetches one project of the caller.
// @Summary Get a project
// @Tags Project
// @Produce json
// @Param projectId query string true "Project ID"
// @Success 200 {object} response.Body{data=dto.ProjectResponse}
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /project/getprojectdetails [get]
// @Security BearerAuth
func (handler *Handler) GetProjectDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjectDetails")
	defer scope.End()

	owner, err := identity.Require(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, owner, r.URL.Query().Get(constant.RequestParamProjectID))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to get project")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, msgProjectFetched, res)
}

// EditProject renames a project.
// @Summary Rename a project
// @Tags Project
// @Accept json
// @Produce json
// @Param projectId query string true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Update Project Request"
// @Success 200 {object} response.Body{data=dto.ProjectResponse}
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /project/editproject [patch]
// @Security BearerAuth
func (handler *Handler) EditProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditProject")
	defer scope.End()

	owner, err := identity.Require(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateProjectRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, owner, r.URL.Query().Get(constant.RequestParamProjectID), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to edit project")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Project edited by user " + owner.UserID)

	response.WithData(w, http.StatusOK, msgProjectEdited, res)
}

// DeleteProject removes a project and its todos.
// @Summary Delete a project
// @Tags Project
// @Produce json
// @Param projectId query string true "Project ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /project/deleteproject [delete]
// @Router /project/deleteproject [put]
// @Security BearerAuth
func (handler *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProject")
	defer scope.End()

	owner, err := identity.Require(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, owner, r.URL.Query().Get(constant.RequestParamProjectID)); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to delete project")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Project deleted by user " + owner.UserID)

	response.WithMessage(w, http.StatusOK, msgProjectDeleted)
}

// CreateMarkdown exports a project summary and publishes it as a gist.
// @Summary Export a project as markdown
// @Tags Project
// @Produce json
// @Param projectId query string true "Project ID"
// @Success 200 {object} response.Body "Markdown file created, data holds url and archive_url"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /project/createmd [get]
// @Security BearerAuth
func (handler *Handler) CreateMarkdown(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMarkdown")
	defer scope.End()

	owner, err := identity.Require(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.export.CreateMarkdown(ctx, owner, r.URL.Query().Get(constant.RequestParamProjectID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export project")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, msgMarkdownCreated, res)
}
