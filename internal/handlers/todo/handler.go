package todo

import (
	"net/http"
	"tasknest/infras/otel"
	"tasknest/internal/domains/todo/model/dto"
	"tasknest/internal/domains/todo/service"
	"tasknest/shared/constant"
	"tasknest/shared/identity"
	"tasknest/shared/validator"
	"tasknest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	msgTodoAdded   = "Todo added successfully."
	msgTodosListed = "Todos retrieved successfully."
	msgTodoMarked  = "Todo status updated successfully."
	msgTodoUpdated = "Todo updated successfully."
	msgTodoDeleted = "Todo deleted successfully."
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todo", func(routerGroup chi.Router) {
		routerGroup.Post("/addtodo", handler.AddTodo)
		routerGroup.Get("/gettodos", handler.GetTodos)
		routerGroup.Patch("/marktodo", handler.MarkTodo)
		routerGroup.Patch("/updatetodo", handler.UpdateTodo)
		routerGroup.Put("/deletetodo", handler.DeleteTodo)
		routerGroup.Delete("/deletetodo", handler.DeleteTodo)
	})
}

// AddTodo handles the creation of a new todo item.
// @Summary Create a new todo item
// @Description Add a pending todo to one of the caller's projects.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Create Todo Request"
// @Success 201 {object} response.Body{data=dto.TodoResponse} "Todo added successfully."
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todo/addtodo [post]
// @Security BearerAuth
func (handler *Handler) AddTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddTodo")
	defer scope.End()

	owner, err := identity.Require(ctx)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.CreateTodoRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, owner, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo created successfully by user " + owner.UserID)

	response.WithData(writer, http.StatusCreated, msgTodoAdded, res)
}

// GetTodos lists the todos of a project in insertion order.
// @Summary Get the todos of a project
// @Tags Todo
// @Produce json
// @Param projectId query string true "Project ID"
// @Success 200 {object} response.Body{data=dto.GetTodosResponse}
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todo/gettodos [get]
// @Security BearerAuth
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	owner, err := identity.Require(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	todos, err := handler.service.GetAll(ctx, owner, r.URL.Query().Get(constant.RequestParamProjectID))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to get todos")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, msgTodosListed, todos)
}

// MarkTodo flips a todo between pending and done.
// @Summary Toggle the status of a todo
// @Tags Todo
// @Produce json
// @Param todoId query string true "Todo ID"
// @Success 200 {object} response.Body{data=dto.TodoResponse}
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todo/marktodo [patch]
// @Security BearerAuth
func (handler *Handler) MarkTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkTodo")
	defer scope.End()

	owner, err := identity.Require(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Mark(ctx, owner, r.URL.Query().Get(constant.RequestParamTodoID))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to mark todo")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, msgTodoMarked, todo)
}

// UpdateTodo applies a partial update to a todo.
// @Summary Update a todo
// @Tags Todo
// @Accept json
// @Produce json
// @Param todoId query string true "Todo ID"
// @Param request body dto.UpdateTodoRequest true "Update Todo Request"
// @Success 200 {object} response.Body{data=dto.TodoResponse}
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todo/updatetodo [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	owner, err := identity.Require(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateTodoRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Update(ctx, owner, r.URL.Query().Get(constant.RequestParamTodoID), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo updated successfully by user " + owner.UserID)

	response.WithData(w, http.StatusOK, msgTodoUpdated, todo)
}

// DeleteTodo deletes a todo item by its ID.
// @Summary Delete a todo
// @Tags Todo
// @Produce json
// @Param todoId query string true "Todo ID"
// @Success 200 {object} response.Message "Todo deleted successfully."
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todo/deletetodo [delete]
// @Router /todo/deletetodo [put]
// @Security BearerAuth
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	owner, err := identity.Require(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, owner, r.URL.Query().Get(constant.RequestParamTodoID)); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo deleted successfully by user " + owner.UserID)

	response.WithMessage(w, http.StatusOK, msgTodoDeleted)
}
