package basic

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/bindkit/core/view"
)

// HelloView is the logical name of the greeting page.
const HelloView = "response/hello"

// NewViews returns the registry with every demo view.
func NewViews() *view.Registry {
	r := view.NewRegistry()
	r.MustRegister(HelloView, helloPage)
	return r
}

func helloPage(model view.Model) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Title</title>
</head>
<body>
<p>`+templ.EscapeString(model.Text("data"))+`</p>
</body>
</html>
`)
		return err
	})
}
