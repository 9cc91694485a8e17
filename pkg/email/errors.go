package email

import "errors"

var (
	ErrFailedToSendEmail = errors.New("mailer.errors.failed_to_send_email")
	ErrInvalidConfig     = errors.New("mailer.errors.invalid_config")
	ErrInvalidParams     = errors.New("mailer.errors.invalid_params")
	ErrUnknownProvider   = errors.New("mailer.errors.unknown_provider")
	ErrBuildMessage      = errors.New("mailer.errors.build_message_failed")
)
