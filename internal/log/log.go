package log

import (
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2"
)

var base = zap.NewNop()

// Init installs the process logger. Before it runs all entries are dropped,
// which keeps tests quiet without extra wiring.
func Init(l *zap.Logger) { base = l }

func write(level string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	fs := make([]zap.Field, 0, 8)
	fs = append(fs, zap.String("action", action))
	if c != nil {
		fs = append(fs,
			zap.String("ip", c.IP()),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			fs = append(fs, zap.String("req_id", rid))
		}
	}
	if err != nil {
		fs = append(fs, zap.String("err", err.Error()))
	}
	if len(fields) > 0 {
		fs = append(fs, zap.Any("fields", fields))
	}

	switch level {
	case "error":
		base.Error(action, fs...)
	case "warn":
		base.Warn(action, fs...)
	case "audit":
		// audit entries stay at info severity but carry a kind tag so
		// they can be filtered out of the regular application stream
		base.Info(action, append(fs, zap.String("kind", "audit"))...)
	default:
		base.Info(action, fs...)
	}
}

func Info(c *fiber.Ctx, action string, fields map[string]any) { write("info", c, action, nil, fields) }
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write("audit", c, action, nil, fields)
}
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write("warn", c, action, nil, fields)
}
func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write("error", c, action, err, fields)
}
