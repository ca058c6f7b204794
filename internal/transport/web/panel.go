package web

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/internal/eventbus"
	"github.com/heartmarshall/soundboard/internal/service/soundboard"
	"github.com/heartmarshall/soundboard/pkg/ctxutil"
)

// multipartOverhead is the slack allowed on top of the file size for the
// multipart envelope.
const multipartOverhead = 64 << 10

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	admin, _ := ctxutil.AdminFromCtx(ctx)

	sounds, err := h.svc.List(ctx)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	interval, err := h.svc.Interval(ctx)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	volume, err := h.svc.Volume(ctx)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	records, err := h.svc.RecentActivity(ctx, 0)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	limits := h.svc.Limits()
	h.render(w, r, http.StatusOK, "index.html", indexView{
		Root:        h.cfg.RootPath,
		Admin:       admin,
		Sounds:      sounds,
		Interval:    interval,
		Volume:      volume,
		MinInterval: limits.MinInterval,
		MaxInterval: limits.MaxInterval,
		Activity:    toActivity(records),
		Message:     r.URL.Query().Get("msg"),
	})
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.svc.Limits().MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.renderMessage(w, r, http.StatusBadRequest, "File too large.")
			return
		}
		h.renderMessage(w, r, http.StatusBadRequest, "No file uploaded.")
		return
	}
	defer file.Close()

	// One byte past the limit is enough for the size check.
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		h.renderMessage(w, r, http.StatusBadRequest, "Could not read the uploaded file.")
		return
	}

	sound, err := h.svc.Upload(r.Context(), eventbus.OriginWeb, soundboard.UploadInput{
		Filename: header.Filename,
		Data:     data,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.redirectWithMessage(w, r, "Uploaded "+sound.Filename)
}

func (h *Handler) rename(w http.ResponseWriter, r *http.Request) {
	newName, err := h.svc.Rename(r.Context(), eventbus.OriginWeb, soundboard.RenameInput{
		OldName: r.PostFormValue("old_name"),
		NewName: r.PostFormValue("new_name"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.redirectWithMessage(w, r, fmt.Sprintf("Renamed %s to %s", strings.TrimSpace(r.PostFormValue("old_name")), newName))
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	filename := r.PostFormValue("filename")
	if err := h.svc.Delete(r.Context(), eventbus.OriginWeb, filename); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.redirectWithMessage(w, r, "Deleted "+filename)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	filename, err := url.PathUnescape(chi.URLParam(r, "filename"))
	if err != nil || !domain.IsSafeFilename(filename) {
		h.renderMessage(w, r, http.StatusNotFound, "Sound not found.")
		return
	}

	data, err := h.svc.Download(r.Context(), filename)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) setInterval(w http.ResponseWriter, r *http.Request) {
	seconds, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("interval")))
	if err != nil {
		h.renderMessage(w, r, http.StatusBadRequest, "Interval must be a whole number of seconds.")
		return
	}
	if _, err := h.svc.SetInterval(r.Context(), eventbus.OriginWeb, seconds); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.redirectWithMessage(w, r, fmt.Sprintf("Interval set to %d seconds", seconds))
}

func (h *Handler) setVolume(w http.ResponseWriter, r *http.Request) {
	percent, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("volume")))
	if err != nil {
		h.renderMessage(w, r, http.StatusBadRequest, "Volume must be a whole number.")
		return
	}
	if _, err := h.svc.SetVolume(r.Context(), eventbus.OriginWeb, percent); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.redirectWithMessage(w, r, fmt.Sprintf("Volume set to %d%%", percent))
}

func (h *Handler) redirectWithMessage(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, h.path("/")+"?msg="+url.QueryEscape(msg), http.StatusSeeOther)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.renderMessage(w, r, http.StatusBadRequest, verr.Messages())
	case errors.Is(err, domain.ErrAlreadyExists):
		h.renderMessage(w, r, http.StatusBadRequest, "A sound with that name already exists.")
	case errors.Is(err, domain.ErrNotFound):
		h.renderMessage(w, r, http.StatusNotFound, "Sound not found.")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		h.renderMessage(w, r, http.StatusInternalServerError, "Internal server error.")
	}
}
