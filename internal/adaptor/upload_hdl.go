package adaptor

import (
	"net/http"

	"game-ghor/internal/usecase"
	"game-ghor/pkg/utils"

	"go.uber.org/zap"
)

const maxUploadSize = 10 << 20 // 10 MB

type UploadHandler struct {
	service usecase.UploadService
	log     *zap.Logger
}

func NewUploadHandler(service usecase.UploadService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		service: service,
		log:     log.With(zap.String("handler", "upload")),
	}
}

// UploadImage handles POST /admin/upload-image (multipart field "file")
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart body", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	url, err := h.service.SaveImage(file, header)
	if err != nil {
		handleServiceError(w, h.log, err, "upload image")
		return
	}

	utils.ResponseCreated(w, "Image uploaded", map[string]string{"url": url})
}
