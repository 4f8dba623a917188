package utils

import (
	"bytes"
	"context"

	"github.com/a-h/templ"
)

// TemplString renders t into a string.
func TemplString(ctx context.Context, t templ.Component) (string, error) {
	var b bytes.Buffer
	if err := t.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
