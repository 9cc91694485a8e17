package slides

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/certmailer/pkg/logger"
)

// Placeholder tokens expected in the template. Matching is case-insensitive.
const (
	TokenStudentName = "[Student Name]"
	TokenCourseName  = "[Course Name]"
	TokenCourseDates = "[Course Dates]"
)

// Fields are the values substituted into the template.
type Fields struct {
	StudentName string
	CourseName  string
	CourseDates string
}

// Replacements returns the template substitutions for f in a stable order.
func (f Fields) Replacements() []Replacement {
	return []Replacement{
		{Token: TokenStudentName, Value: f.StudentName},
		{Token: TokenCourseName, Value: f.CourseName},
		{Token: TokenCourseDates, Value: f.CourseDates},
	}
}

// CopyName is the Drive file name of the working copy for a student.
func CopyName(studentName string) string {
	return "Certificate - " + studentName
}

// Generator produces PDFs from the configured template.
// It holds no per-request state and is safe for concurrent use.
type Generator struct {
	svc TemplateService
	cfg Config
	log *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for stage and cleanup records.
func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGenerator creates a Generator. It panics if svc is nil.
func NewGenerator(svc TemplateService, cfg Config, opts ...Option) *Generator {
	if svc == nil {
		panic("slides: template service is nil")
	}
	g := &Generator{
		svc: svc,
		cfg: cfg,
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(logger.Component("slides"))
	return g
}

// Generate renders a certificate for f and returns the PDF bytes.
func (g *Generator) Generate(ctx context.Context, f Fields) ([]byte, error) {
	start := time.Now()

	var fileID string
	err := g.call(ctx, "copy template", func(ctx context.Context) error {
		var err error
		fileID, err = g.svc.Copy(ctx, g.cfg.TemplateID, CopyName(f.StudentName))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
	defer g.cleanup(ctx, fileID)

	g.log.DebugContext(ctx, "template copied", logger.FileID(fileID))

	err = g.call(ctx, "replace text", func(ctx context.Context) error {
		return g.svc.ReplaceText(ctx, fileID, f.Replacements())
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReplaceFailed, err)
	}

	var pdf []byte
	err = g.call(ctx, "export pdf", func(ctx context.Context) error {
		var err error
		pdf, err = g.svc.ExportPDF(ctx, fileID, g.cfg.MaxPDFSize)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, ErrEmptyPDF)
	}

	g.log.InfoContext(ctx, "pdf generated",
		logger.FileID(fileID),
		logger.Size(len(pdf)),
		logger.Duration(time.Since(start)),
	)

	return pdf, nil
}

// call runs fn under the per-call deadline.
func (g *Generator) call(ctx context.Context, operation string, fn func(context.Context) error) error {
	if g.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.CallTimeout)
		defer cancel()
	}
	err := fn(ctx)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return classifyGoogleError(err, operation)
	}
	return err
}

// cleanup deletes the working copy. Failures are logged, never returned.
func (g *Generator) cleanup(ctx context.Context, fileID string) {
	err := g.call(context.WithoutCancel(ctx), "delete copy", func(ctx context.Context) error {
		return g.svc.Delete(ctx, fileID)
	})
	if err != nil {
		g.log.WarnContext(ctx, "failed to delete certificate copy",
			logger.FileID(fileID),
			logger.Error(fmt.Errorf("%w: %w", ErrDeleteFailed, err)),
		)
		return
	}
	g.log.DebugContext(ctx, "certificate copy deleted", logger.FileID(fileID))
}
