package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/domiapi/nanobanana-http/internal/domi"
	"github.com/domiapi/nanobanana-http/internal/model"
)

var sizeCatalog = model.SizeCatalog{
	SupportedSizes: []model.SizeInfo{
		{Size: "1x1", Description: "Square (1024x1024)", UseCase: "Avatars, icons, social media posts"},
		{Size: "3x4", Description: "Portrait (768x1024)", UseCase: "Phone wallpapers, posters, book covers"},
		{Size: "4x3", Description: "Landscape (1024x768)", UseCase: "Desktop wallpapers, presentations, web banners"},
		{Size: "9x16", Description: "Vertical (576x1024)", UseCase: "Short-form vertical video platforms"},
		{Size: "16x9", Description: "Widescreen (1024x576)", UseCase: "Video thumbnails, widescreen video"},
	},
	DefaultSize:    domi.DefaultSize,
	Recommendation: "Pick the size that matches where the image will be shown",
}

// SupportedSizes returns the static size catalog.
func SupportedSizes(c *gin.Context) {
	c.JSON(http.StatusOK, sizeCatalog)
}
