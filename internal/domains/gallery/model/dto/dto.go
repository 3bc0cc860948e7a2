package dto

import (
	"mime/multipart"
	"osam/internal/domains/gallery/model"
	"osam/shared"
	gDto "osam/shared/dto"
	gModel "osam/shared/model"
	"osam/shared/timezone"

	"github.com/google/uuid"
)

type CreateGalleryRequest struct {
	Name        string  `json:"name"         validate:"required,max=200"`
	Description *string `json:"description"  validate:"omitempty"`
	GalleryType string  `json:"gallery_type" validate:"required,oneof=photos videos 360photos"`
	IsFeatured  bool    `json:"is_featured"`
	PlaceID     *string `json:"place_id"     validate:"omitempty,uuid"`
	EventID     *string `json:"event_id"     validate:"omitempty,uuid"`
}

func (c *CreateGalleryRequest) ToModel(user string) model.Gallery {
	return model.Gallery{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		GalleryType: c.GalleryType,
		IsFeatured:  c.IsFeatured,
		PlaceID:     c.PlaceID,
		EventID:     c.EventID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGalleryRequest struct {
	Name        string  `db:"name"         json:"name"         validate:"omitempty,max=200"`
	Description *string `db:"description"  json:"description"  validate:"omitempty"`
	GalleryType string  `db:"gallery_type" json:"gallery_type" validate:"omitempty,oneof=photos videos 360photos"`
	IsFeatured  *bool   `db:"is_featured"  json:"is_featured"`
	PlaceID     *string `db:"place_id"     json:"place_id"     validate:"omitempty,uuid"`
	EventID     *string `db:"event_id"     json:"event_id"     validate:"omitempty,uuid"`
}

type GalleryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	GalleryType string  `json:"gallery_type"`
	IsFeatured  bool    `json:"is_featured"`
	ViewCount   int     `json:"view_count"`
	PlaceID     *string `json:"place_id"`
	EventID     *string `json:"event_id"`
	gDto.Metadata
}

func (r *GalleryResponse) FromModel(mod model.Gallery) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.GalleryType = mod.GalleryType
	r.IsFeatured = mod.IsFeatured
	r.ViewCount = mod.ViewCount
	r.PlaceID = mod.PlaceID
	r.EventID = mod.EventID
	r.Metadata.FromModel(mod.Metadata)
}

type GetGalleriesResponse struct {
	Galleries []GalleryResponse `json:"galleries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetGalleriesResponse) FromModels(models []model.Gallery, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Galleries = make([]GalleryResponse, len(models))
	for i, mod := range models {
		r.Galleries[i].FromModel(mod)
	}
}

type AddGalleryImageRequest struct {
	ImageURL     string  `json:"image_url"     validate:"required,url,max=500"`
	ThumbnailURL *string `json:"thumbnail_url" validate:"omitempty,url,max=500"`
	Title        string  `json:"title"         validate:"required,max=200"`
	Caption      *string `json:"caption"       validate:"omitempty,max=500"`
	Photographer *string `json:"photographer"  validate:"omitempty,max=100"`
	ImageOrder   int     `json:"image_order"   validate:"omitempty,gte=0"`
	IsFeatured   bool    `json:"is_featured"`
}

func (c *AddGalleryImageRequest) ToModel(galleryID, user string) model.GalleryImage {
	return model.GalleryImage{
		ID:           uuid.NewString(),
		GalleryID:    galleryID,
		ImageURL:     c.ImageURL,
		ThumbnailURL: c.ThumbnailURL,
		Title:        c.Title,
		Caption:      c.Caption,
		Photographer: c.Photographer,
		ImageOrder:   c.ImageOrder,
		IsFeatured:   c.IsFeatured,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type GalleryImageResponse struct {
	ID           string  `json:"id"`
	GalleryID    string  `json:"gallery_id"`
	ImageURL     string  `json:"image_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Title        string  `json:"title"`
	Caption      *string `json:"caption"`
	Photographer *string `json:"photographer"`
	ImageOrder   int     `json:"image_order"`
	IsFeatured   bool    `json:"is_featured"`
	ViewCount    int     `json:"view_count"`
	gDto.Metadata
}

func (r *GalleryImageResponse) FromModel(mod model.GalleryImage) {
	r.ID = mod.ID
	r.GalleryID = mod.GalleryID
	r.ImageURL = mod.ImageURL
	r.ThumbnailURL = mod.ThumbnailURL
	r.Title = mod.Title
	r.Caption = mod.Caption
	r.Photographer = mod.Photographer
	r.ImageOrder = mod.ImageOrder
	r.IsFeatured = mod.IsFeatured
	r.ViewCount = mod.ViewCount
	r.Metadata.FromModel(mod.Metadata)
}

type GetGalleryImagesResponse struct {
	Images    []GalleryImageResponse `json:"images"`
	TotalData int                    `json:"total_data"`
}

func (r *GetGalleryImagesResponse) FromModels(models []model.GalleryImage) {
	r.TotalData = len(models)

	r.Images = make([]GalleryImageResponse, len(models))
	for i, mod := range models {
		r.Images[i].FromModel(mod)
	}
}

type ReorderImagesRequest struct {
	Orders map[string]int `json:"orders" validate:"required,min=1,dive,gte=0"`
}

type GalleryStatisticsResponse struct {
	GalleryID       string `json:"gallery_id"`
	ImageCount      int    `json:"image_count"`
	TotalImageViews int    `json:"total_image_views"`
	GalleryViews    int    `json:"gallery_views"`
}

type UploadImageRequest struct {
	File multipart.FileHeader `validate:"required,mimetypes=image/jpeg image/png image/webp,maxfilesize=10"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}

type DeleteImagesRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,dive,url"`
}
