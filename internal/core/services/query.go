package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
)

// QueryAs returns a typed cursor over a view whose aggregate holds T values.
func QueryAs[T any](ctx context.Context, engine driving.ViewEngine, name string) (*domain.Cursor[T], error) {
	raw, err := engine.QueryView(ctx, name)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, raw.Len())
	for v := range raw.All() {
		typed, ok := v.(T)
		if !ok {
			var want T
			return nil, fmt.Errorf("query view %q: %w: element is %T, want %T",
				name, domain.ErrInvalidInput, v, want)
		}
		out = append(out, typed)
	}
	return domain.NewCursor(out), nil
}
