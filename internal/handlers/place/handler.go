package place

import (
	"net/http"
	"osam/infras/otel"
	"osam/internal/domains/place/model"
	"osam/internal/domains/place/model/dto"
	"osam/internal/domains/place/service"
	"osam/shared"
	"osam/shared/constant"
	gDto "osam/shared/dto"
	"osam/shared/validator"
	"osam/transport/http/middleware"
	"osam/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Place
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Place, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/places", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePlace)
		routerGroup.Get("/", handler.GetPlaces)
		routerGroup.Get("/{id}", handler.GetPlaceByID)
		routerGroup.Patch("/{id}", handler.UpdatePlace)
		routerGroup.Delete("/{id}", handler.DeletePlace)
		routerGroup.Post("/{id}/featured", handler.ToggleFeatured)
	})
}

// CreatePlace handles the creation of a new place.
// @Summary Create a new place
// @Description Create a new place with the provided details.
// @Tags Place
// @Accept json
// @Produce json
// @Param request body dto.CreatePlaceRequest true "Create Place Request"
// @Success 201 {object} response.Message "Place created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/places [post]
// @Security BearerAuth
func (handler *Handler) CreatePlace(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePlace")
	defer scope.End()

	req := dto.CreatePlaceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create place")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Place created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Place created successfully")
}

// GetPlaces retrieves all places based on query parameters.
// @Summary Get all places
// @Description Retrieve all places with optional filtering and pagination.
// @Tags Place
// @Accept json
// @Produce json
// @Param name query string false "Filter by name (substring)"
// @Param category query string false "Filter by category" Enums(place, landmark, viewpoint, parking)
// @Param accessibility query string false "Filter by accessibility" Enums(easily_accessible, moderate, difficult)
// @Param location query string false "Filter by location (substring)"
// @Param featured query boolean false "Filter by featured flag"
// @Param free query boolean false "Only free-entry places"
// @Param min_views query integer false "Minimum view count"
// @Param parking query boolean false "Filter by parking availability"
// @Param restrooms query boolean false "Filter by public restrooms"
// @Param food query boolean false "Filter by food nearby"
// @Success 200 {object} dto.GetPlacesResponse "List of places"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/places [get]
func (handler *Handler) GetPlaces(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlaces")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := handler.buildListFilter(r)

	places, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get places")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Places retrieved successfully")

	response.WithJSON(w, http.StatusOK, places)
}

func (handler *Handler) buildListFilter(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := query.Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if location := query.Get(model.FieldLocation); location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if category := query.Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if accessibility := query.Get(model.FieldAccessibility); accessibility != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAccessibility,
			Operator: gDto.FilterOperatorEq,
			Value:    accessibility,
			Table:    model.TableName,
		})
	}

	boolFilters := map[string]string{
		"featured":  model.FieldIsFeatured,
		"parking":   model.FieldParkingAvailable,
		"restrooms": model.FieldPublicRestrooms,
		"food":      model.FieldFoodNearby,
	}

	for param, field := range boolFilters {
		if value := shared.ConvertStringToBool(query.Get(param)); value != nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    *value,
				Table:    model.TableName,
			})
		}
	}

	if free := shared.ConvertStringToBool(query.Get("free")); free != nil && *free {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEntryFee,
			Operator: gDto.FilterOperatorLessEq,
			Value:    0,
			Table:    model.TableName,
		})
	}

	if minViews, err := strconv.Atoi(query.Get("min_views")); err == nil && minViews > 0 {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldViewCount,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    minViews,
			Table:    model.TableName,
		})
	}

	return filterGroup
}

// GetPlaceByID retrieves a place by its ID.
// @Summary Get a place by ID
// @Description Retrieve a place by its unique identifier.
// @Tags Place
// @Accept json
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} dto.PlaceResponse "Place details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/places/{id} [get]
func (handler *Handler) GetPlaceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlaceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	place, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get place by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Place retrieved successfully")

	response.WithJSON(w, http.StatusOK, place)
}

// UpdatePlace updates an existing place by its ID.
// @Summary Update a place by ID
// @Description Update the details of an existing place.
// @Tags Place
// @Accept json
// @Produce json
// @Param id path string true "Place ID"
// @Param request body dto.UpdatePlaceRequest true "Update Place Request"
// @Success 200 {object} response.Message "Place updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/places/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePlace")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePlaceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update place")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Place updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Place updated successfully")
}

// DeletePlace deletes a place by its ID.
// @Summary Delete a place by ID
// @Description Delete a place using its unique identifier.
// @Tags Place
// @Accept json
// @Produce json
// @Param id path string true "Place ID"
// @Success 204 "Place deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/places/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePlace")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete place")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Place deleted successfully by user " + user)

	response.WithNoContent(w)
}

// ToggleFeatured flips the featured flag on a place.
// @Summary Toggle the featured flag of a place
// @Description Toggle whether the place shows up in featured listings.
// @Tags Place
// @Accept json
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} map[string]bool "New featured state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/places/{id}/featured [post]
// @Security BearerAuth
func (handler *Handler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleFeatured")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	featured, err := handler.service.ToggleFeatured(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle place featured flag")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Place featured flag toggled by user " + user)

	response.WithJSON(w, http.StatusOK, map[string]bool{"is_featured": featured})
}
