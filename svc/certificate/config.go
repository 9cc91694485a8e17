package certificate

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/certmailer/pkg/validator"
)

// Config holds the fixed parts of every certificate email.
type Config struct {
	CCRecipients []string `env:"CERT_CC_RECIPIENTS" envSeparator:"," envDefault:"iris@tertiaryinfotech.com,angch@tertiaryinfotech.com,siraj@tertiarycourses.com.gh"`
	Subject      string   `env:"CERT_SUBJECT" envDefault:"Certificate of Achievement: Congratulations!"`
}

// DefaultConfig returns the built-in recipients and subject.
func DefaultConfig() Config {
	return Config{
		CCRecipients: []string{
			"iris@tertiaryinfotech.com",
			"angch@tertiaryinfotech.com",
			"siraj@tertiarycourses.com.gh",
		},
		Subject: "Certificate of Achievement: Congratulations!",
	}
}

func (c Config) Validate() error {
	rules := []validator.Rule{validator.RequiredString("subject", c.Subject)}
	for i, cc := range c.CCRecipients {
		rules = append(rules, validator.ValidEmail(fmt.Sprintf("cc[%d]", i), strings.TrimSpace(cc)))
	}
	return validator.Apply(rules...)
}
