package slides

import (
	"fmt"
	"strings"
	"time"
)

// Config configures the certificate generator.
type Config struct {
	TemplateID  string        `env:"GOOGLE_SLIDES_TEMPLATE_ID,required"`
	CallTimeout time.Duration `env:"SLIDES_CALL_TIMEOUT" envDefault:"30s"`
	MaxPDFSize  int64         `env:"SLIDES_MAX_PDF_SIZE" envDefault:"26214400"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.TemplateID) == "" {
		return fmt.Errorf("%w: template id is required", ErrInvalidConfig)
	}
	if c.CallTimeout < 0 {
		return fmt.Errorf("%w: call timeout must not be negative", ErrInvalidConfig)
	}
	if c.MaxPDFSize < 0 {
		return fmt.Errorf("%w: max pdf size must not be negative", ErrInvalidConfig)
	}
	return nil
}
