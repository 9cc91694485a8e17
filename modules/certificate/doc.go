// Package certificate mounts the certificate form page and the
// POST /api/generate-cert endpoint on a chi router.
//
//	svc := certsvc.NewService(generator, mailer, certsvc.WithLogger(log))
//	r.Mount("/", certificate.NewModule(svc, certificate.WithLogger(log)).Handle())
package certificate
