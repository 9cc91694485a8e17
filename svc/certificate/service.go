package certificate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/certmailer/pkg/logger"
	"github.com/dmitrymomot/certmailer/pkg/slides"
)

// Stage is a step of the issuing pipeline.
type Stage string

const (
	StageValidating Stage = "validating"
	StageGenerating Stage = "generating"
	StageEmailing   Stage = "emailing"
	StageDone       Stage = "done"
)

// Generator renders the certificate PDF.
type Generator interface {
	Generate(ctx context.Context, f slides.Fields) ([]byte, error)
}

// Sender delivers a rendered certificate.
type Sender interface {
	Send(ctx context.Context, d Delivery) error
}

// Result is the success payload returned to clients.
type Result struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	FileName string `json:"fileName"`
}

// Service runs the validate, generate, email pipeline. It keeps no
// per-request state and is safe for concurrent use.
type Service struct {
	gen    Generator
	sender Sender
	log    *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a Service. It panics if a collaborator is nil.
func NewService(gen Generator, sender Sender, opts ...ServiceOption) *Service {
	if gen == nil || sender == nil {
		panic("certificate: generator and sender are required")
	}
	s := &Service{gen: gen, sender: sender, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("certificate"))
	return s
}

// Issue validates req, generates the certificate and emails it. Every failure
// is returned as an *Error; a panic in a collaborator becomes KindUnknown.
func (s *Service) Issue(ctx context.Context, req Request) (res Result, err error) {
	stage := StageValidating
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = newError(KindUnknown, fmt.Errorf("panic during %s: %v", stage, r))
			res = Result{}
		}
		if err != nil {
			s.log.WarnContext(ctx, "certificate not issued",
				logger.Stage(string(stage)),
				logger.Duration(time.Since(start)),
				slog.String("kind", AsError(err).Kind.String()),
				logger.Error(err),
			)
		}
	}()

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	log := s.log.With(logger.Email(req.StudentEmail))
	advance := func(next Stage, since time.Time) {
		log.InfoContext(ctx, "stage completed",
			logger.Stage(string(stage)),
			logger.Duration(time.Since(since)),
		)
		stage = next
	}
	advance(StageGenerating, start)

	stageStart := time.Now()
	pdf, err := s.gen.Generate(ctx, slides.Fields{
		StudentName: req.StudentName,
		CourseName:  req.CourseName,
		CourseDates: req.CourseDates,
	})
	if err != nil {
		return Result{}, newError(KindGeneration, err)
	}
	advance(StageEmailing, stageStart)

	fileName := FileName(req.StudentName)

	stageStart = time.Now()
	err = s.sender.Send(ctx, Delivery{
		To:          req.StudentEmail,
		StudentName: req.StudentName,
		CourseName:  req.CourseName,
		PDF:         pdf,
		FileName:    fileName,
	})
	if err != nil {
		if AsError(err).Kind != KindSend {
			err = newError(KindSend, err)
		}
		return Result{}, err
	}
	advance(StageDone, stageStart)

	log.InfoContext(ctx, "certificate issued",
		logger.FileName(fileName),
		logger.Size(len(pdf)),
		logger.Duration(time.Since(start)),
	)

	return Result{
		Success:  true,
		Message:  "Certificate sent successfully to " + req.StudentEmail,
		FileName: fileName,
	}, nil
}
