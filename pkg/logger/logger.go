package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	Reset     = "\033[0m"
	Red       = "\033[31m"
	Green     = "\033[32m"
	Yellow    = "\033[33m"
	Magenta   = "\033[35m"
	Cyan      = "\033[36m"
	White     = "\033[37m"
	BoldBlue  = "\033[1;34m"
	BoldWhite = "\033[1;37m"
)

var levelColors = map[slog.Level]string{
	slog.LevelDebug: Cyan,
	slog.LevelInfo:  Green,
	slog.LevelWarn:  Yellow,
	slog.LevelError: Red,
}

type RequestKey string

const (
	RequestIDKey RequestKey = "requestID"
)

// ColoredHandler prints one colored line per record. The request id is
// taken from the record attrs or, failing that, from the context.
type ColoredHandler struct {
	level slog.Leveler
	attrs []slog.Attr
	group string
	color bool
	mu    *sync.Mutex
	out   io.Writer
}

func NewColoredHandler(w io.Writer, opts *slog.HandlerOptions) *ColoredHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	var level slog.Leveler = slog.LevelInfo
	if opts.Level != nil {
		level = opts.Level
	}
	return &ColoredHandler{level: level, color: true, mu: &sync.Mutex{}, out: w}
}

// WithoutColor returns a copy that writes plain text.
func (h *ColoredHandler) WithoutColor() *ColoredHandler {
	c := *h
	c.color = false
	return &c
}

func (h *ColoredHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *ColoredHandler) paint(color, s string) string {
	if !h.color {
		return s
	}
	return color + s + Reset
}

func (h *ColoredHandler) Handle(ctx context.Context, r slog.Record) error {
	levelColor, ok := levelColors[r.Level]
	if !ok {
		levelColor = White
	}

	var line strings.Builder
	line.WriteString(h.paint(Magenta, r.Time.Format("15:04:05.000")) + " ")
	line.WriteString(h.paint(levelColor, fmt.Sprintf("%-6s", strings.ToUpper(r.Level.String()))) + " ")

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		attrs = append(attrs, a)
		return true
	})

	requestID := GetRequestID(ctx)
	for _, a := range attrs {
		if a.Key == "request_id" && a.Value.Kind() == slog.KindString {
			requestID = a.Value.String()
		}
	}
	if requestID != "" {
		line.WriteString(h.paint(BoldBlue, "["+requestID+"]") + " ")
	}

	line.WriteString(h.paint(BoldWhite, r.Message))

	for _, a := range attrs {
		if a.Key == "request_id" {
			continue
		}
		val := a.Value.String()
		if a.Value.Kind() == slog.KindString {
			val = fmt.Sprintf("%q", val)
		}
		line.WriteString(" " + h.paint(Yellow, a.Key) + "=" + val)
	}
	line.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line.String())
	return err
}

func (h *ColoredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	if h.group != "" {
		for i := len(h.attrs); i < len(c.attrs); i++ {
			c.attrs[i].Key = h.group + "." + c.attrs[i].Key
		}
	}
	return &c
}

func (h *ColoredHandler) WithGroup(name string) slog.Handler {
	c := *h
	if c.group != "" {
		c.group += "." + name
	} else {
		c.group = name
	}
	return &c
}

// ParseLevel maps debug, info, warn and error to slog levels; anything else
// is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Setup installs a ColoredHandler writing to stderr as the slog default.
func Setup(level string) *ColoredHandler {
	handler := NewColoredHandler(os.Stderr, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})

	slog.SetDefault(slog.New(handler))

	return handler
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}
