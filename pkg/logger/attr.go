package logger

import "log/slog"

// Attribute helpers keep log field names consistent across the module.

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

func File(name string) slog.Attr {
	return slog.String("file", name)
}

func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
