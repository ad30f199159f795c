package logger

import (
	"context"
	"log/slog"
	"slices"
)

type attrsKey struct{}

// ContextWithAttrs returns a copy of ctx carrying attrs.
// Every record logged with that context through a decorated handler includes them.
// Attributes already stored in ctx are kept; new ones are appended.
func ContextWithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	existing := attrsFromContext(ctx)
	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, attrsKey{}, merged)
}

func attrsFromContext(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(attrsKey{}).([]slog.Attr)
	return slices.Clip(attrs)
}
