package gallery

import (
	"net/http"
	"osam/infras/otel"
	"osam/internal/domains/gallery/model"
	"osam/internal/domains/gallery/model/dto"
	"osam/internal/domains/gallery/service"
	"osam/shared"
	"osam/shared/constant"
	gDto "osam/shared/dto"
	"osam/shared/failure"
	"osam/shared/validator"
	"osam/transport/http/middleware"
	"osam/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Gallery
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Gallery, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/galleries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGallery)
		routerGroup.Get("/", handler.GetGalleries)
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Delete("/images", handler.DeleteImagesByURL)
		routerGroup.Get("/{id}", handler.GetGalleryByID)
		routerGroup.Patch("/{id}", handler.UpdateGallery)
		routerGroup.Delete("/{id}", handler.DeleteGallery)
		routerGroup.Post("/{id}/featured", handler.ToggleFeatured)
		routerGroup.Get("/{id}/statistics", handler.GetStatistics)
		routerGroup.Post("/{id}/images", handler.AddImage)
		routerGroup.Get("/{id}/images", handler.GetImages)
		routerGroup.Post("/{id}/images/reorder", handler.ReorderImages)
		routerGroup.Get("/{id}/images/featured", handler.GetFeaturedImage)
		routerGroup.Get("/{id}/images/{imageID}", handler.GetImageByID)
		routerGroup.Delete("/{id}/images/{imageID}", handler.DeleteImage)
		routerGroup.Post("/{id}/images/{imageID}/featured", handler.SetFeaturedImage)
	})
}

// CreateGallery handles the creation of a new gallery.
// @Summary Create a new gallery
// @Description Create a new gallery, optionally linked to a place or an event.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryRequest true "Create Gallery Request"
// @Success 201 {object} response.Message "Gallery created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries [post]
// @Security BearerAuth
func (handler *Handler) CreateGallery(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGallery")
	defer scope.End()

	req := dto.CreateGalleryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create gallery")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Gallery created successfully")
}

// GetGalleries retrieves all galleries based on query parameters.
// @Summary Get all galleries
// @Description Retrieve all galleries with optional filtering and pagination.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param name query string false "Filter by name (substring)"
// @Param gallery_type query string false "Filter by gallery type" Enums(photos, videos, 360photos)
// @Param place_id query string false "Filter by linked place"
// @Param event_id query string false "Filter by linked event"
// @Param featured query boolean false "Filter by featured flag"
// @Param min_views query integer false "Minimum view count"
// @Success 200 {object} dto.GetGalleriesResponse "List of galleries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries [get]
func (handler *Handler) GetGalleries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGalleries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := handler.buildListFilter(r)

	galleries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get galleries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Galleries retrieved successfully")

	response.WithJSON(w, http.StatusOK, galleries)
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

	if galleryType := query.Get(model.FieldGalleryType); galleryType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGalleryType,
			Operator: gDto.FilterOperatorEq,
			Value:    galleryType,
			Table:    model.TableName,
		})
	}

	if placeID := query.Get(model.FieldPlaceID); placeID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPlaceID,
			Operator: gDto.FilterOperatorEq,
			Value:    placeID,
			Table:    model.TableName,
		})
	}

	if eventID := query.Get(model.FieldEventID); eventID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEventID,
			Operator: gDto.FilterOperatorEq,
			Value:    eventID,
			Table:    model.TableName,
		})
	}

	if featured := shared.ConvertStringToBool(query.Get("featured")); featured != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsFeatured,
			Operator: gDto.FilterOperatorEq,
			Value:    *featured,
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

// GetGalleryByID retrieves a gallery by its ID.
// @Summary Get a gallery by ID
// @Description Retrieve a gallery by its unique identifier.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Success 200 {object} dto.GalleryResponse "Gallery details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id} [get]
func (handler *Handler) GetGalleryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGalleryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	gallery, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery retrieved successfully")

	response.WithJSON(w, http.StatusOK, gallery)
}

// UpdateGallery updates an existing gallery by its ID.
// @Summary Update a gallery by ID
// @Description Update the details of an existing gallery.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Param request body dto.UpdateGalleryRequest true "Update Gallery Request"
// @Success 200 {object} response.Message "Gallery updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGallery")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGalleryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update gallery")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Gallery updated successfully")
}

// DeleteGallery deletes a gallery by its ID.
// @Summary Delete a gallery by ID
// @Description Delete a gallery, its images, and the stored objects behind them.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Success 204 "Gallery deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGallery")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete gallery")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery deleted successfully by user " + user)

	response.WithNoContent(w)
}

// ToggleFeatured flips the featured flag on a gallery.
// @Summary Toggle the featured flag of a gallery
// @Description Toggle whether the gallery shows up in featured listings.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Success 200 {object} map[string]bool "New featured state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id}/featured [post]
// @Security BearerAuth
func (handler *Handler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleFeatured")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	featured, err := handler.service.ToggleFeatured(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle gallery featured flag")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery featured flag toggled by user " + user)

	response.WithJSON(w, http.StatusOK, map[string]bool{"is_featured": featured})
}

// GetStatistics returns aggregate numbers for a gallery.
// @Summary Get gallery statistics
// @Description Image count, total image views, and the gallery view count.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Success 200 {object} dto.GalleryStatisticsResponse "Gallery statistics"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id}/statistics [get]
func (handler *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatistics")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	statistics, err := handler.service.Statistics(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery statistics")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery statistics retrieved successfully")

	response.WithJSON(w, http.StatusOK, statistics)
}

// AddImage adds an image to a gallery.
// @Summary Add an image to a gallery
// @Description Register an image in a gallery. A featured image replaces the previous one.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Param request body dto.AddGalleryImageRequest true "Add Gallery Image Request"
// @Success 201 {object} response.Message "Image added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) AddImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AddGalleryImageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddImage(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add gallery image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery image added successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Image added successfully")
}

// GetImages lists the images of a gallery ordered by their position.
// @Summary Get gallery images
// @Description Retrieve the images of a gallery ordered by image_order.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Success 200 {object} dto.GetGalleryImagesResponse "List of images"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id}/images [get]
func (handler *Handler) GetImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImages")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	images, err := handler.service.GetImages(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery images")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery images retrieved successfully")

	response.WithJSON(w, http.StatusOK, images)
}

// GetImageByID retrieves a single gallery image.
// @Summary Get a gallery image by ID
// @Description Retrieve one image belonging to a gallery.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Param imageID path string true "Image ID"
// @Success 200 {object} dto.GalleryImageResponse "Image details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id}/images/{imageID} [get]
func (handler *Handler) GetImageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	imageID := chi.URLParam(r, constant.RequestParamImageID)

	image, err := handler.service.GetImage(ctx, id, imageID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery image retrieved successfully")

	response.WithJSON(w, http.StatusOK, image)
}

// DeleteImage deletes a gallery image and its stored object.
// @Summary Delete a gallery image
// @Description Remove an image from a gallery and delete the stored object.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Param imageID path string true "Image ID"
// @Success 204 "Image deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id}/images/{imageID} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	imageID := chi.URLParam(r, constant.RequestParamImageID)

	if err := handler.service.DeleteImage(ctx, id, imageID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete gallery image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery image deleted successfully by user " + user)

	response.WithNoContent(w)
}

// ReorderImages applies a new ordering to the images of a gallery.
// @Summary Reorder gallery images
// @Description Apply an image id to order mapping to a gallery.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Param request body dto.ReorderImagesRequest true "Reorder Images Request"
// @Success 200 {object} response.Message "Images reordered successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id}/images/reorder [post]
// @Security BearerAuth
func (handler *Handler) ReorderImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReorderImages")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ReorderImagesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ReorderImages(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reorder gallery images")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery images reordered successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Images reordered successfully")
}

// SetFeaturedImage marks one image as the featured image of its gallery.
// @Summary Set the featured image of a gallery
// @Description Mark an image featured. Any previously featured image is cleared.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Param imageID path string true "Image ID"
// @Success 200 {object} response.Message "Featured image set successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id}/images/{imageID}/featured [post]
// @Security BearerAuth
func (handler *Handler) SetFeaturedImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetFeaturedImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	imageID := chi.URLParam(r, constant.RequestParamImageID)

	if err := handler.service.SetFeaturedImage(ctx, id, imageID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set featured gallery image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery featured image set by user " + user)

	response.WithMessage(w, http.StatusOK, "Featured image set successfully")
}

// GetFeaturedImage retrieves the featured image of a gallery.
// @Summary Get the featured image of a gallery
// @Description Retrieve the image currently marked featured in the gallery.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Success 200 {object} dto.GalleryImageResponse "Featured image"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id}/images/featured [get]
func (handler *Handler) GetFeaturedImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	image, err := handler.service.GetFeaturedImage(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured gallery image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Featured gallery image retrieved successfully")

	response.WithJSON(w, http.StatusOK, image)
}

// UploadImage stores an image file and returns its public URL.
// @Summary Upload a gallery image file
// @Description Upload an image to object storage and return the public URL.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (jpeg, png, webp; max 10 MB)"
// @Success 201 {object} dto.UploadImageResponse "Uploaded image URL"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		err = failure.BadRequestFromString("failed to parse multipart form")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		err = failure.BadRequestFromString("missing file in multipart form")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{File: *fileHeader}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(w, err)

		return
	}

	uploaded, err := handler.service.UploadImage(ctx, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload gallery image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery image uploaded by user " + user)

	response.WithJSON(w, http.StatusCreated, uploaded)
}

// DeleteImagesByURL deletes stored objects by their public URLs.
// @Summary Delete stored images by URL
// @Description Delete objects from storage given their public URLs.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.DeleteImagesRequest true "Delete Images Request"
// @Success 200 {object} response.Message "Images deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/images [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImagesByURL(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImagesByURL")
	defer scope.End()

	req := dto.DeleteImagesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteImagesByURL(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete stored images")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Stored images deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Images deleted successfully")
}
