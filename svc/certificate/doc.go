// Package certificate issues course completion certificates.
//
// Service.Issue runs one submission through the pipeline
// validating → generating → emailing → done. Validation failures stop the
// pipeline before any remote call. A failed generation means no email is
// sent. Every failure is an *Error whose Kind maps to an HTTP status and
// whose message is safe to show to the user:
//
//	KindValidation  400  "All fields are required" / "Invalid email address"
//	KindGeneration  500  "PDF generation failed: {cause}"
//	KindSend        500  "Email sending failed: {cause}"
//	KindUnknown     500  "Failed: {cause}"
//
// Classify adapts the taxonomy to handler.NewErrorHandler.
package certificate
