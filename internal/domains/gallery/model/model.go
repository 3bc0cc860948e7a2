package model

import (
	"osam/shared/model"
)

const (
	TableName  = "galleries"
	EntityName = "gallery"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldGalleryType = "gallery_type"
	FieldIsFeatured  = "is_featured"
	FieldViewCount   = "view_count"
	FieldPlaceID     = "place_id"
	FieldEventID     = "event_id"
)

const (
	ImageTableName  = "gallery_images"
	ImageEntityName = "gallery_image"

	ImageFieldID           = "id"
	ImageFieldGalleryID    = "gallery_id"
	ImageFieldImageURL     = "image_url"
	ImageFieldThumbnailURL = "thumbnail_url"
	ImageFieldTitle        = "title"
	ImageFieldCaption      = "caption"
	ImageFieldPhotographer = "photographer"
	ImageFieldImageOrder   = "image_order"
	ImageFieldIsFeatured   = "is_featured"
	ImageFieldViewCount    = "view_count"
)

const (
	TypePhotos    = "photos"
	TypeVideos    = "videos"
	Type360Photos = "360photos"
)

type Gallery struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	GalleryType string  `db:"gallery_type"`
	IsFeatured  bool    `db:"is_featured"`
	ViewCount   int     `db:"view_count"`
	PlaceID     *string `db:"place_id"`
	EventID     *string `db:"event_id"`
	model.Metadata
}

type GalleryImage struct {
	ID           string  `db:"id"`
	GalleryID    string  `db:"gallery_id"`
	ImageURL     string  `db:"image_url"`
	ThumbnailURL *string `db:"thumbnail_url"`
	Title        string  `db:"title"`
	Caption      *string `db:"caption"`
	Photographer *string `db:"photographer"`
	ImageOrder   int     `db:"image_order"`
	IsFeatured   bool    `db:"is_featured"`
	ViewCount    int     `db:"view_count"`
	model.Metadata
}
