package handlers

import (
	"ClinicBridge/middlewares"
	"ClinicBridge/services"
	"ClinicBridge/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	service *services.ImageService
	store   *utils.FileStore
}

func NewImageHandler(service *services.ImageService, store *utils.FileStore) *ImageHandler {
	return &ImageHandler{service: service, store: store}
}

func (h *ImageHandler) UploadImage(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"error": "No image file provided"})
		return
	}

	filename, err := h.store.Save(header)
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}

	imageType := c.PostForm("imageType")
	image, err := h.service.Upload(actor, c.Param("patient_id"), filename, header.Filename, imageType)
	if err != nil {
		// The stored file is orphaned if the record cannot be created.
		if removeErr := h.store.Remove(filename); removeErr != nil {
			middlewares.HttpError(c, "Failed to clean up stored file", 500, removeErr)
			return
		}
		middlewares.HttpErrorFrom(c, err)
		return
	}
	c.JSON(201, image)
}

func (h *ImageHandler) DeleteImage(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	image, err := h.service.Delete(actor, c.Param("image_id"))
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}

	if err := h.store.Remove(image.Filename); err != nil {
		middlewares.HttpError(c, "Failed to remove stored file", 500, err)
		return
	}
	c.Status(204)
}
