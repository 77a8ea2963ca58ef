package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/certvera/certvera/internal/client/notify"
	"github.com/certvera/certvera/internal/common"
	"github.com/certvera/certvera/internal/logging"
)

// Exporter renders a certificate preview and writes it into a downloads
// directory. Failures are reported through the notifier, never panicked or
// rethrown past the export boundary; one attempt per call.
type Exporter struct {
	renderer *Renderer
	notifier notify.Notifier
	log      logging.Logger
}

func NewExporter(notifier notify.Notifier, log logging.Logger) *Exporter {
	return &Exporter{
		renderer: NewRenderer(),
		notifier: notifier,
		log:      log.With("workflow", "export"),
	}
}

// Filename derives the download name from the student on the preview:
// certificate-<studentName>.png, or certificate-preview.png while the field
// is still blank. Path separators are stripped from the name.
func Filename(studentName string) string {
	name := strings.TrimSpace(studentName)
	if name == "" {
		name = "preview"
	}
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return '-'
		}
		return r
	}, name)
	return fmt.Sprintf("certificate-%s.png", name)
}

func (e *Exporter) fail(ctx context.Context, err error) error {
	e.log.Warn(ctx, "export failed", "error", err)
	e.notifier.Notify(notify.Notification{
		Title:   "Error",
		Message: "Failed to download the certificate image.",
		Variant: notify.Destructive,
	})
	return fmt.Errorf("%w: %v", common.ErrExportFailed, err)
}

// Export renders the preview and writes the PNG under dir, returning the
// written path. The outcome is reported through exactly one notification.
func (e *Exporter) Export(ctx context.Context, p Preview, dir string) (string, error) {
	img, err := e.renderer.Render(p)
	if err != nil {
		return "", e.fail(ctx, err)
	}

	data, err := e.renderer.Encode(img)
	if err != nil {
		return "", e.fail(ctx, err)
	}

	path := filepath.Join(dir, Filename(p.StudentName))
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", e.fail(ctx, err)
	}

	e.log.Info(ctx, "certificate image exported", "path", path)
	e.notifier.Notify(notify.Notification{
		Title:   "Downloaded",
		Message: "Certificate image has been downloaded.",
	})
	return path, nil
}
