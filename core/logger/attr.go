package logger

import (
	"log/slog"
	"time"
)

// Helpers that take optional values return the empty Attr, which slog drops,
// so log.Info("msg", logger.Error(err)) needs no nil check.

// Error logs err under "error"; nil yields nothing.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }

// RequestID logs id under "request_id"; an empty id yields nothing.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Method(method string) slog.Attr { return slog.String("method", method) }
func Path(path string) slog.Attr     { return slog.String("path", path) }

// Query logs the raw query string; an empty one yields nothing.
func Query(raw string) slog.Attr {
	if raw == "" {
		return slog.Attr{}
	}
	return slog.String("query", raw)
}

func StatusCode(code int) slog.Attr { return slog.Int("status_code", code) }
func ClientIP(ip string) slog.Attr  { return slog.String("client_ip", ip) }

// UserAgent logs the User-Agent header; an empty one yields nothing.
func UserAgent(ua string) slog.Attr {
	if ua == "" {
		return slog.Attr{}
	}
	return slog.String("user_agent", ua)
}

func BytesOut(n int64) slog.Attr { return slog.Int64("bytes_out", n) }

func Component(name string) slog.Attr { return slog.String("component", name) }

// Event names what a record reports, e.g. "request_param" or "request_body".
func Event(name string) slog.Attr { return slog.String("event", name) }
