package logger

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Stage records the pipeline stage a record belongs to.
func Stage(name string) slog.Attr {
	return slog.String("stage", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// FileID records a remote document identifier.
func FileID(id string) slog.Attr {
	return slog.String("file_id", id)
}

func FileName(name string) slog.Attr {
	return slog.String("file_name", name)
}

func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

// MessageID records the identifier a mail provider assigned to a message.
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}

// Email records a recipient address with the local part masked,
// e.g. "ada@example.com" becomes "a**@example.com".
func Email(addr string) slog.Attr {
	return slog.String("email", MaskEmail(addr))
}

// MaskEmail keeps the first rune of the local part and the full domain.
func MaskEmail(addr string) string {
	addr = strings.TrimSpace(addr)
	at := strings.LastIndexByte(addr, '@')
	if at <= 0 {
		return strings.Repeat("*", len([]rune(addr)))
	}
	local := []rune(addr[:at])
	return string(local[0]) + strings.Repeat("*", len(local)-1) + addr[at:]
}
