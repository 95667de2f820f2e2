package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/people-api/internal/api/shared"
	"github.com/phrazzld/people-api/internal/domain"
	"github.com/phrazzld/people-api/internal/platform/logger"
	"github.com/phrazzld/people-api/internal/validation"
)

// imageField is the multipart field carrying the upload.
const imageField = "image"

// UploadHandler handles image uploads.
type UploadHandler struct {
	binder    binder
	maxMemory int64
	logger    *slog.Logger
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(v *validation.Validator, b FormBinding, logger *slog.Logger) *UploadHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UploadHandler")
	}

	return &UploadHandler{
		binder:    binder{validator: v, metrics: b.Metrics},
		maxMemory: b.MaxMemory,
		logger:    logger.With(slog.String("component", "upload_handler")),
	}
}

// PostImage handles POST /post-image. The whole file is read to measure it.
func (h *UploadHandler) PostImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		if isMissingUpload(err) {
			h.binder.respondViolations(w, r, validation.Violations{validation.Missing(validation.LocBody, imageField)})
			return
		}
		h.binder.respondViolations(w, r, validation.Violations{
			validation.NewViolation(validation.LocBody, nil, validation.TypeGeneric, "multipart body could not be parsed", nil),
		})
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn("failed to remove multipart temp files", slog.String("error", err.Error()))
		}
	}()

	file, header, err := r.FormFile(imageField)
	if err != nil {
		h.binder.respondViolations(w, r, validation.Violations{validation.Missing(validation.LocBody, imageField)})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("read upload %q: %w", header.Filename, err), "Failed to read upload")
		return
	}

	size := int64(len(data))
	h.binder.metrics.ObserveUpload(size)
	info := domain.NewImageInfo(header.Filename, header.Header.Get("Content-Type"), size)

	log.Debug("image uploaded",
		slog.String("filename", info.Filename),
		slog.Int64("size_bytes", size))
	shared.RespondWithJSON(w, r, http.StatusCreated, info)
}
