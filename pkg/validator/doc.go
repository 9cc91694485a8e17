// Package validator expresses input checks as a list of Rules evaluated by
// Apply. Each failing rule contributes one ValidationError; the combined
// ValidationErrors value implements error and can be recovered from wrapped
// errors with ExtractValidationErrors.
//
//	err := validator.Apply(
//		validator.RequiredString("studentName", req.StudentName),
//		validator.ValidEmail("studentEmail", req.StudentEmail),
//	)
package validator
