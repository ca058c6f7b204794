package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/pkg/ctxutil"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"pathEscape": url.PathEscape,
}).ParseFS(templateFS, "templates/*.html"))

type indexView struct {
	Root        string
	Admin       ctxutil.Admin
	Sounds      []string
	Interval    int
	Volume      int
	MinInterval int
	MaxInterval int
	Activity    []activityView
	Message     string
}

type messageView struct {
	Root    string
	Status  int
	Message string
	Admin   bool
}

type activityView struct {
	At   string
	Text string
}

func toActivity(records []domain.AuditRecord) []activityView {
	out := make([]activityView, 0, len(records))
	for _, rec := range records {
		out = append(out, activityView{
			At:   rec.CreatedAt.UTC().Format(time.DateTime),
			Text: describe(rec),
		})
	}
	return out
}

func describe(rec domain.AuditRecord) string {
	extra := ""
	if rec.Extra != nil {
		extra = *rec.Extra
	}
	switch rec.Kind {
	case domain.AuditUpload:
		return "uploaded " + rec.Filename
	case domain.AuditDelete:
		return "deleted " + rec.Filename
	case domain.AuditRename:
		return fmt.Sprintf("renamed %s to %s", rec.Filename, extra)
	case domain.AuditIntervalChange:
		return fmt.Sprintf("interval changed from %s to %s seconds", extra, rec.Filename)
	case domain.AuditVolumeChange:
		return fmt.Sprintf("volume changed from %s%% to %s%%", extra, rec.Filename)
	default:
		return string(rec.Kind) + " " + rec.Filename
	}
}

// render executes name into a buffer so a template error never leaves a
// half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.ErrorContext(r.Context(), "render template",
			slog.String("template", name),
			slog.String("error", err.Error()))
		http.Error(w, "Internal server error.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	_, isAdmin := ctxutil.AdminFromCtx(r.Context())
	h.render(w, r, status, "message.html", messageView{
		Root:    h.cfg.RootPath,
		Status:  status,
		Message: msg,
		Admin:   isAdmin,
	})
}
