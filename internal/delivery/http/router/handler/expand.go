package handler

import (
	"slices"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// parseExpand resolves the ?expand= query parameter into a relation list.
// A missing parameter yields the default projection; an explicitly empty one
// yields no relations at all. Unknown names are rejected.
func parseExpand(c echo.Context, allowed []string, defaults []string) ([]string, error) {
	raw, ok := c.QueryParams()["expand"]
	if !ok {
		return defaults, nil
	}

	joined := strings.Join(raw, ",")
	if strings.TrimSpace(joined) == "" {
		return []string{}, nil
	}

	parts := strings.Split(joined, ",")
	relations := make([]string, 0, len(parts))
	for _, part := range parts {
		relation := strings.TrimSpace(part)
		if relation == "" {
			continue
		}
		if !slices.Contains(allowed, relation) {
			return nil, errors.Wrapf(domainerrors.ErrInvalidExpand, "unknown relation %q", relation)
		}
		if !slices.Contains(relations, relation) {
			relations = append(relations, relation)
		}
	}

	return relations, nil
}
