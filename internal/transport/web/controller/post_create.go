package controller

import (
	"errors"
	"net/http"

	"github.com/jbeshir/reelfeed/internal/command"
	"github.com/jbeshir/reelfeed/internal/domain"
)

// DefaultMaxUploadBytes bounds the size of an uploaded video.
const DefaultMaxUploadBytes = 256 << 20

// PostCreate handles POST /v1/posts with a multipart body holding "video" and "description".
type PostCreate struct {
	UploadCmd      command.Command[command.UploadPostRequest, domain.Post]
	MaxUploadBytes int64
}

func (c PostCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	maxBytes := c.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(ctx, w, http.StatusRequestEntityTooLarge, "video too large")
			return
		}
		logger.WarnContext(ctx, "unable to parse upload form", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	video, header, err := r.FormFile("video")
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "missing video file")
		return
	}
	defer func() { _ = video.Close() }()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/mp4"
	}

	post, err := c.UploadCmd.Execute(ctx, command.UploadPostRequest{
		UserID:      userID,
		Description: r.FormValue("description"),
		FileName:    header.Filename,
		ContentType: contentType,
		Video:       video,
	})
	if err != nil {
		logger.ErrorContext(ctx, "upload failed", "error", err)
		writeError(ctx, w, statusForError(err), "upload failed")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, post)
}
