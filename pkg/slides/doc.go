// Package slides renders documents from a Google Slides template and exports
// them as PDF.
//
// A Generator works on a throwaway copy of the template: it copies the
// template file in Google Drive, replaces placeholder tokens in the copy with
// the Slides API, exports the copy as PDF and deletes it again. The template
// itself is never modified.
//
// # Usage
//
//	auth, _ := googleauth.New(ctx, authCfg)
//	svc, err := slides.NewGoogleService(ctx, auth.Options()...)
//	if err != nil {
//	    return err
//	}
//
//	gen := slides.NewGenerator(svc, cfg, slides.WithLogger(log))
//	pdf, err := gen.Generate(ctx, slides.Fields{
//	    StudentName: "Ada Lovelace",
//	    CourseName:  "Analytical Engines",
//	    CourseDates: "January 15-17, 2025",
//	})
//
// # Cleanup
//
// Once the copy exists, it is deleted on every exit path, including failed
// substitutions and exports. A failed delete is logged with the orphaned file
// id at WARN level and never replaces the error that caused the exit.
//
// # Timeouts
//
// Every remote call runs under its own deadline (Config.CallTimeout). The
// deletion ignores cancellation of the caller's context so that an aborted
// request still removes its copy.
//
// # Error Handling
//
// Generate wraps failures with the stage sentinel (ErrCopyFailed,
// ErrReplaceFailed, ErrExportFailed) and, where the cause is known, with
// ErrOperationTimeout, ErrOperationCanceled, ErrNotFound or ErrAccessDenied.
package slides
