package slides

import "errors"

var (
	ErrInvalidConfig = errors.New("slides.errors.invalid_config")

	// Pipeline stages
	ErrCopyFailed    = errors.New("slides.errors.copy_failed")
	ErrReplaceFailed = errors.New("slides.errors.replace_failed")
	ErrExportFailed  = errors.New("slides.errors.export_failed")
	ErrDeleteFailed  = errors.New("slides.errors.delete_failed")

	// Export results
	ErrPDFTooLarge = errors.New("slides.errors.pdf_too_large")
	ErrEmptyPDF    = errors.New("slides.errors.empty_pdf")

	// Remote API failures
	ErrNotFound          = errors.New("slides.errors.not_found")
	ErrAccessDenied      = errors.New("slides.errors.access_denied")
	ErrOperationTimeout  = errors.New("slides.errors.operation_timeout")
	ErrOperationCanceled = errors.New("slides.errors.operation_canceled")
)
