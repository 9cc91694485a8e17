package slides

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gslides "google.golang.org/api/slides/v1"
)

const pdfMimeType = "application/pdf"

// Replacement substitutes every case-insensitive occurrence of Token with Value.
type Replacement struct {
	Token string
	Value string
}

// TemplateService is the narrow set of remote operations the Generator needs.
type TemplateService interface {
	// Copy duplicates the template file under the given name and returns the
	// id of the copy.
	Copy(ctx context.Context, templateID, name string) (string, error)
	// ReplaceText applies all replacements in a single batch update.
	ReplaceText(ctx context.Context, presentationID string, replacements []Replacement) error
	// ExportPDF exports the file as PDF. An export larger than maxSize bytes
	// fails with ErrPDFTooLarge; maxSize <= 0 disables the limit.
	ExportPDF(ctx context.Context, fileID string, maxSize int64) ([]byte, error)
	Delete(ctx context.Context, fileID string) error
}

// GoogleService implements TemplateService with the Drive v3 and Slides v1 APIs.
// It is safe for concurrent use.
type GoogleService struct {
	drive  *drive.Service
	slides *gslides.Service
}

var _ TemplateService = (*GoogleService)(nil)

// NewGoogleService builds the Drive and Slides clients with the same options,
// typically googleauth.Client.Options().
func NewGoogleService(ctx context.Context, opts ...option.ClientOption) (*GoogleService, error) {
	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: drive client: %w", ErrInvalidConfig, err)
	}
	slidesSvc, err := gslides.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: slides client: %w", ErrInvalidConfig, err)
	}
	return &GoogleService{drive: driveSvc, slides: slidesSvc}, nil
}

func (s *GoogleService) Copy(ctx context.Context, templateID, name string) (string, error) {
	file, err := s.drive.Files.Copy(templateID, &drive.File{Name: name}).
		SupportsAllDrives(true).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", classifyGoogleError(err, "copy template")
	}
	if file.Id == "" {
		return "", fmt.Errorf("copy template: response has no file id")
	}
	return file.Id, nil
}

func (s *GoogleService) ReplaceText(ctx context.Context, presentationID string, replacements []Replacement) error {
	requests := make([]*gslides.Request, 0, len(replacements))
	for _, r := range replacements {
		requests = append(requests, &gslides.Request{
			ReplaceAllText: &gslides.ReplaceAllTextRequest{
				ContainsText: &gslides.SubstringMatchCriteria{
					Text:      r.Token,
					MatchCase: false,
					// false is the zero value and would be dropped otherwise
					ForceSendFields: []string{"MatchCase"},
				},
				ReplaceText: r.Value,
			},
		})
	}

	_, err := s.slides.Presentations.BatchUpdate(presentationID, &gslides.BatchUpdatePresentationRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return classifyGoogleError(err, "replace text")
	}
	return nil
}

func (s *GoogleService) ExportPDF(ctx context.Context, fileID string, maxSize int64) ([]byte, error) {
	resp, err := s.drive.Files.Export(fileID, pdfMimeType).Context(ctx).Download()
	if err != nil {
		return nil, classifyGoogleError(err, "export pdf")
	}
	defer func() { _ = resp.Body.Close() }()

	body := io.Reader(resp.Body)
	if maxSize > 0 {
		body = io.LimitReader(resp.Body, maxSize+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, classifyGoogleError(err, "read pdf")
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: export exceeds %d bytes", ErrPDFTooLarge, maxSize)
	}
	return data, nil
}

func (s *GoogleService) Delete(ctx context.Context, fileID string) error {
	err := s.drive.Files.Delete(fileID).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return classifyGoogleError(err, "delete copy")
	}
	return nil
}

// classifyGoogleError converts API and transport errors to package errors.
func classifyGoogleError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation", ErrOperationCanceled, operation)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s: %s", ErrNotFound, operation, apiErr.Message)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s: %s", ErrAccessDenied, operation, apiErr.Message)
		default:
			return fmt.Errorf("%s operation failed (code: %d): %w", operation, apiErr.Code, err)
		}
	}

	return fmt.Errorf("%s operation failed: %w", operation, err)
}
