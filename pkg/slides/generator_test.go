package slides_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/certmailer/pkg/logger"
	"github.com/dmitrymomot/certmailer/pkg/slides"
)

// MockTemplateService is a mock implementation of TemplateService for testing
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) Copy(ctx context.Context, templateID, name string) (string, error) {
	args := m.Called(ctx, templateID, name)
	return args.String(0), args.Error(1)
}

func (m *MockTemplateService) ReplaceText(ctx context.Context, presentationID string, replacements []slides.Replacement) error {
	args := m.Called(ctx, presentationID, replacements)
	return args.Error(0)
}

func (m *MockTemplateService) ExportPDF(ctx context.Context, fileID string, maxSize int64) ([]byte, error) {
	args := m.Called(ctx, fileID, maxSize)
	pdf, _ := args.Get(0).([]byte)
	return pdf, args.Error(1)
}

func (m *MockTemplateService) Delete(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

var testFields = slides.Fields{
	StudentName: "Ada Lovelace",
	CourseName:  "Analytical Engines",
	CourseDates: "January 15-17, 2025",
}

func testConfig() slides.Config {
	return slides.Config{
		TemplateID:  "template-1",
		CallTimeout: time.Second,
		MaxPDFSize:  1024,
	}
}

// logEntries decodes JSON log lines written to buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func findEntry(entries []map[string]any, msg string) map[string]any {
	for _, e := range entries {
		if e["msg"] == msg {
			return e
		}
	}
	return nil
}

func TestFields_Replacements(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []slides.Replacement{
		{Token: "[Student Name]", Value: "Ada Lovelace"},
		{Token: "[Course Name]", Value: "Analytical Engines"},
		{Token: "[Course Dates]", Value: "January 15-17, 2025"},
	}, testFields.Replacements())
	assert.Equal(t, "Certificate - Ada Lovelace", slides.CopyName("Ada Lovelace"))
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, testConfig().Validate())

	cfg := testConfig()
	cfg.TemplateID = "  "
	assert.ErrorIs(t, cfg.Validate(), slides.ErrInvalidConfig)

	cfg = testConfig()
	cfg.MaxPDFSize = -1
	assert.ErrorIs(t, cfg.Validate(), slides.ErrInvalidConfig)
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("success deletes the copy once", func(t *testing.T) {
		t.Parallel()
		svc := &MockTemplateService{}
		svc.On("Copy", mock.Anything, "template-1", "Certificate - Ada Lovelace").Return("copy-1", nil).Once()
		svc.On("ReplaceText", mock.Anything, "copy-1", testFields.Replacements()).Return(nil).Once()
		svc.On("ExportPDF", mock.Anything, "copy-1", int64(1024)).Return([]byte("%PDF-1.7"), nil).Once()
		svc.On("Delete", mock.Anything, "copy-1").Return(nil).Once()

		pdf, err := slides.NewGenerator(svc, testConfig()).Generate(context.Background(), testFields)

		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.7"), pdf)
		svc.AssertExpectations(t)
		svc.AssertNumberOfCalls(t, "Delete", 1)
	})

	t.Run("copy failure deletes nothing", func(t *testing.T) {
		t.Parallel()
		svc := &MockTemplateService{}
		svc.On("Copy", mock.Anything, mock.Anything, mock.Anything).Return("", slides.ErrNotFound)

		pdf, err := slides.NewGenerator(svc, testConfig()).Generate(context.Background(), testFields)

		assert.Nil(t, pdf)
		assert.ErrorIs(t, err, slides.ErrCopyFailed)
		assert.ErrorIs(t, err, slides.ErrNotFound)
		svc.AssertNotCalled(t, "ReplaceText", mock.Anything, mock.Anything, mock.Anything)
		svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestGenerator_CleanupOnFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := []struct {
		name    string
		setup   func(svc *MockTemplateService)
		wantErr []error
	}{
		{
			name: "replace fails",
			setup: func(svc *MockTemplateService) {
				svc.On("ReplaceText", mock.Anything, "copy-1", mock.Anything).Return(boom)
			},
			wantErr: []error{slides.ErrReplaceFailed, boom},
		},
		{
			name: "export fails",
			setup: func(svc *MockTemplateService) {
				svc.On("ReplaceText", mock.Anything, "copy-1", mock.Anything).Return(nil)
				svc.On("ExportPDF", mock.Anything, "copy-1", mock.Anything).Return(nil, boom)
			},
			wantErr: []error{slides.ErrExportFailed, boom},
		},
		{
			name: "export too large",
			setup: func(svc *MockTemplateService) {
				svc.On("ReplaceText", mock.Anything, "copy-1", mock.Anything).Return(nil)
				svc.On("ExportPDF", mock.Anything, "copy-1", mock.Anything).Return(nil, slides.ErrPDFTooLarge)
			},
			wantErr: []error{slides.ErrExportFailed, slides.ErrPDFTooLarge},
		},
		{
			name: "export empty",
			setup: func(svc *MockTemplateService) {
				svc.On("ReplaceText", mock.Anything, "copy-1", mock.Anything).Return(nil)
				svc.On("ExportPDF", mock.Anything, "copy-1", mock.Anything).Return([]byte{}, nil)
			},
			wantErr: []error{slides.ErrExportFailed, slides.ErrEmptyPDF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, deleteErr := range []error{nil, errors.New("delete failed")} {
				svc := &MockTemplateService{}
				svc.On("Copy", mock.Anything, mock.Anything, mock.Anything).Return("copy-1", nil)
				svc.On("Delete", mock.Anything, "copy-1").Return(deleteErr)
				tt.setup(svc)

				pdf, err := slides.NewGenerator(svc, testConfig()).Generate(context.Background(), testFields)

				assert.Nil(t, pdf)
				for _, want := range tt.wantErr {
					assert.ErrorIs(t, err, want)
				}
				assert.NotErrorIs(t, err, slides.ErrDeleteFailed, "delete failure must not mask the primary error")
				svc.AssertNumberOfCalls(t, "Delete", 1)
			}
		})
	}
}

func TestGenerator_DeleteFailureOnSuccessIsLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	svc := &MockTemplateService{}
	svc.On("Copy", mock.Anything, mock.Anything, mock.Anything).Return("copy-9", nil)
	svc.On("ReplaceText", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	svc.On("ExportPDF", mock.Anything, mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)
	svc.On("Delete", mock.Anything, "copy-9").Return(slides.ErrAccessDenied)

	gen := slides.NewGenerator(svc, testConfig(), slides.WithLogger(logger.New(logger.WithOutput(buf))))
	pdf, err := gen.Generate(context.Background(), testFields)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), pdf)

	entry := findEntry(logEntries(t, buf), "failed to delete certificate copy")
	require.NotNil(t, entry)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "copy-9", entry["file_id"])
	assert.Equal(t, "slides", entry["component"])
	assert.Contains(t, entry["error"], "slides.errors.delete_failed")
}

func TestGenerator_CallTimeout(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CallTimeout = 20 * time.Millisecond

	svc := &MockTemplateService{}
	svc.On("Copy", mock.Anything, mock.Anything, mock.Anything).Return("copy-1", nil)
	svc.On("ReplaceText", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(context.DeadlineExceeded)
	svc.On("Delete", mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), "copy-1").Return(nil)

	_, err := slides.NewGenerator(svc, cfg).Generate(context.Background(), testFields)

	assert.ErrorIs(t, err, slides.ErrReplaceFailed)
	assert.ErrorIs(t, err, slides.ErrOperationTimeout)
	svc.AssertNumberOfCalls(t, "Delete", 1)
}

func TestGenerator_DeletesAfterCallerCancels(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &MockTemplateService{}
	svc.On("Copy", mock.Anything, mock.Anything, mock.Anything).Return("copy-1", nil)
	svc.On("ReplaceText", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(context.Canceled)
	svc.On("Delete", mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), "copy-1").Return(nil)

	_, err := slides.NewGenerator(svc, testConfig()).Generate(ctx, testFields)

	assert.ErrorIs(t, err, slides.ErrOperationCanceled)
	svc.AssertNumberOfCalls(t, "Delete", 1)
}

func TestGenerator_ConcurrentRequestsAreIsolated(t *testing.T) {
	t.Parallel()

	svc := &MockTemplateService{}
	names := []string{"Ada", "Grace", "Linus", "Barbara"}
	for _, name := range names {
		id := "copy-" + name
		svc.On("Copy", mock.Anything, "template-1", slides.CopyName(name)).Return(id, nil).Once()
		svc.On("ReplaceText", mock.Anything, id, mock.MatchedBy(func(r []slides.Replacement) bool {
			return r[0].Value == name
		})).Return(nil).Once()
		svc.On("ExportPDF", mock.Anything, id, mock.Anything).Return([]byte("pdf-"+name), nil).Once()
		svc.On("Delete", mock.Anything, id).Return(nil).Once()
	}

	gen := slides.NewGenerator(svc, testConfig())

	var wg sync.WaitGroup
	results := make([][]byte, len(names))
	for i, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f := testFields
			f.StudentName = name
			pdf, err := gen.Generate(context.Background(), f)
			assert.NoError(t, err)
			results[i] = pdf
		}()
	}
	wg.Wait()

	for i, name := range names {
		assert.Equal(t, []byte("pdf-"+name), results[i])
	}
	svc.AssertExpectations(t)
}

func TestNewGenerator_NilServicePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { slides.NewGenerator(nil, testConfig()) })
}
