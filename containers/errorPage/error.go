package errorPage

import (
	"context"
	"fmt"
	"io"
	"net/http"

	layout "github.com/NikolaTosic-sudo/chess-board/containers/layouts"
	"github.com/a-h/templ"
)

// Error renders a page for a failed request.
func Error(code int, message string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<main class="main"><div style="color: #f0d9b5; text-align: center"><h1>%v %v</h1><p>%v</p><a href="/" style="color: #f0d9b5">Back to the board</a></div></main>`,
			code,
			templ.EscapeString(http.StatusText(code)),
			templ.EscapeString(message),
		)
		return err
	})

	return layout.Base(fmt.Sprintf("%v", code), body)
}
