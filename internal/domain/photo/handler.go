package photo

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"photosync/internal/pkg/response"
)

const (
	msgUploaded     = "File uploaded successfully"
	msgEmpty        = "File is empty"
	msgTooLarge     = "File exceeds maximum allowed size"
	msgUploadFailed = "Failed to upload file: "
	msgListFailed   = "Failed to list photos: "
)

type Handler struct {
	service *Service
	log     logrus.FieldLogger
}

func NewHandler(service *Service, log logrus.FieldLogger) *Handler {
	return &Handler{service: service, log: log}
}

// Upload godoc
// @Summary Upload a photo
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} response.UploadResult
// @Failure 400,413,500 {object} response.UploadResult
// @Router /upload [post]
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.uploadUnnamed(c)
			return
		}
		response.Upload(c, http.StatusBadRequest, "Invalid upload request: "+err.Error(), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer file.Close()

	h.upload(c, UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	})
}

// uploadUnnamed handles a "file" part sent without a filename. The multipart
// parser stores such a part as a form value, so its content and headers are
// only available as a string.
func (h *Handler) uploadUnnamed(c *gin.Context) {
	var content string
	if form := c.Request.MultipartForm; form != nil {
		if values := form.Value["file"]; len(values) > 0 {
			content = values[0]
		}
	}

	h.upload(c, UploadInput{
		Size:    int64(len(content)),
		Content: strings.NewReader(content),
	})
}

func (h *Handler) upload(c *gin.Context, in UploadInput) {
	p, err := h.service.Upload(c.Request.Context(), in)
	switch {
	case err == nil:
		id := strconv.FormatInt(p.ID, 10)
		response.Upload(c, http.StatusOK, msgUploaded, &id)
	case errors.Is(err, ErrEmptyFile):
		response.Upload(c, http.StatusBadRequest, msgEmpty, nil)
	case errors.Is(err, ErrFileTooLarge):
		response.Upload(c, http.StatusRequestEntityTooLarge, msgTooLarge, nil)
	default:
		h.fail(c, err)
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.log.WithError(err).Error("upload failed")
	response.Upload(c, http.StatusInternalServerError, msgUploadFailed+err.Error(), nil)
}

// List godoc
// @Summary List all photos
// @Tags Photos
// @Produce json
// @Success 200 {array} Photo
// @Router /photos [get]
func (h *Handler) List(c *gin.Context) {
	photos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("list photos failed")
		response.Message(c, http.StatusInternalServerError, msgListFailed+err.Error())
		return
	}
	c.JSON(http.StatusOK, photos)
}
