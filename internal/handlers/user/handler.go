package user

import (
	"net/http"
	"osam/infras/otel"
	"osam/internal/domains/user/model"
	"osam/internal/domains/user/model/dto"
	"osam/internal/domains/user/service"
	"osam/shared"
	"osam/shared/constant"
	gDto "osam/shared/dto"
	"osam/shared/validator"
	"osam/transport/http/middleware"
	"osam/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.User
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.User, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth/admin/users", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateUser)
		routerGroup.Get("/", handler.GetUsers)
		routerGroup.Delete("/{id}", handler.DeleteUser)
		routerGroup.Post("/{id}/activate", handler.ActivateUser)
		routerGroup.Post("/{id}/deactivate", handler.DeactivateUser)
		routerGroup.Post("/{id}/promote", handler.PromoteUser)
		routerGroup.Post("/{id}/demote", handler.DemoteUser)
	})
}

// CreateUser creates a new account with any role.
// @Summary Create a user
// @Description Create a user account with an explicit role.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Message "User created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/admin/users [post]
// @Security BearerAuth
func (handler *Handler) CreateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	req := dto.CreateUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create user")

		response.WithError(writer, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserUsername).(string)
	scope.AddEvent("User created successfully by " + actor)

	response.WithMessage(writer, http.StatusCreated, "User created successfully")
}

// GetUsers lists user accounts.
// @Summary List users
// @Description Retrieve user accounts with optional filtering and pagination.
// @Tags User
// @Accept json
// @Produce json
// @Param username query string false "Filter by username (substring)"
// @Param role query string false "Filter by role" Enums(admin, editor)
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} dto.GetUsersResponse "List of users"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/admin/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := handler.buildListFilter(r)

	users, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Users retrieved successfully")

	response.WithJSON(w, http.StatusOK, users)
}

func (handler *Handler) buildListFilter(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if username := query.Get(model.FieldUsername); username != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUsername,
			Operator: gDto.FilterOperatorLike,
			Value:    username,
			Table:    model.TableName,
		})
	}

	if role := query.Get(model.FieldRole); role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(query.Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	return filterGroup
}

// DeleteUser deletes a user account.
// @Summary Delete a user
// @Description Delete a user account. Deleting your own account is rejected.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "User deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/admin/users/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(w, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserUsername).(string)
	scope.AddEvent("User deleted successfully by " + actor)

	response.WithNoContent(w)
}

// ActivateUser re-enables a deactivated account.
// @Summary Activate a user
// @Description Allow the user to log in again.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User activated successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/admin/users/{id}/activate [post]
// @Security BearerAuth
func (handler *Handler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	handler.setActive(w, r, true, "User activated successfully")
}

// DeactivateUser blocks an account from logging in.
// @Summary Deactivate a user
// @Description Block the user from logging in without deleting the account.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User deactivated successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/admin/users/{id}/deactivate [post]
// @Security BearerAuth
func (handler *Handler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	handler.setActive(w, r, false, "User deactivated successfully")
}

func (handler *Handler) setActive(w http.ResponseWriter, r *http.Request, active bool, message string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetActive")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.SetActive(ctx, id, active); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user active flag")

		response.WithError(w, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserUsername).(string)
	scope.AddEvent(message + " by " + actor)

	response.WithMessage(w, http.StatusOK, message)
}

// PromoteUser grants the admin role.
// @Summary Promote a user to admin
// @Description Grant the admin role to a user.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User promoted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/admin/users/{id}/promote [post]
// @Security BearerAuth
func (handler *Handler) PromoteUser(w http.ResponseWriter, r *http.Request) {
	handler.setRole(w, r, constant.RoleAdmin, "User promoted successfully")
}

// DemoteUser reverts a user to the editor role.
// @Summary Demote a user to editor
// @Description Revert a user to the editor role.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User demoted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/admin/users/{id}/demote [post]
// @Security BearerAuth
func (handler *Handler) DemoteUser(w http.ResponseWriter, r *http.Request) {
	handler.setRole(w, r, constant.RoleEditor, "User demoted successfully")
}

func (handler *Handler) setRole(w http.ResponseWriter, r *http.Request, role, message string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetRole")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.SetRole(ctx, id, role); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user role")

		response.WithError(w, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserUsername).(string)
	scope.AddEvent(message + " by " + actor)

	response.WithMessage(w, http.StatusOK, message)
}
