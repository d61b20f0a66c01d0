package view_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/core/view"
)

func dataTemplate(model view.Model) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>"+templ.EscapeString(model.Text("data"))+"</p>")
		return err
	})
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestModel(t *testing.T) {
	t.Parallel()

	m := view.NewModel().AddAttribute("data", "hello!").AddAttribute("count", 3)

	v, ok := m.Attribute("data")
	assert.True(t, ok)
	assert.Equal(t, "hello!", v)
	assert.Equal(t, "3", m.Text("count"))
	assert.Equal(t, "", m.Text("missing"))
	assert.Equal(t, []string{"count", "data"}, m.Names())
}

func TestModelAndView(t *testing.T) {
	t.Parallel()

	mav := view.New("response/hello").AddObject("data", "hello!")
	assert.Equal(t, "response/hello", mav.ViewName())
	assert.Equal(t, "hello!", mav.Model().Text("data"))
	assert.Equal(t, http.StatusOK, mav.Status())

	mav.WithStatus(http.StatusAccepted)
	assert.Equal(t, http.StatusAccepted, mav.Status())
}

func TestWithModel_CopiesAttributes(t *testing.T) {
	t.Parallel()

	model := view.NewModel().AddAttribute("data", "hello!!")
	mav := view.WithModel("response/hello", model)
	model.AddAttribute("data", "changed")

	assert.Equal(t, "hello!!", mav.Model().Text("data"))
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := view.NewRegistry()
	require.NoError(t, reg.Register("/response/hello/", dataTemplate))

	tpl, err := reg.Resolve("response/hello")
	require.NoError(t, err)
	assert.Equal(t, "<p>a &amp; b</p>", render(t, tpl(view.NewModel().AddAttribute("data", "a & b"))))

	c, err := reg.Render("/response/hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "<p></p>", render(t, c))

	_, err = reg.Resolve("response/missing")
	assert.ErrorIs(t, err, view.ErrViewNotFound)

	assert.ErrorIs(t, reg.Register("response/hello", dataTemplate), view.ErrDuplicateView)
	assert.ErrorIs(t, reg.Register(" ", dataTemplate), view.ErrInvalidViewName)
	assert.ErrorIs(t, reg.Register("other", nil), view.ErrInvalidViewName)
	assert.Panics(t, func() { reg.MustRegister("response/hello", dataTemplate) })

	assert.Equal(t, []string{"response/hello"}, reg.Names())
}

func TestRegistry_ConcurrentResolve(t *testing.T) {
	t.Parallel()

	reg := view.NewRegistry()
	reg.MustRegister("a", dataTemplate)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := reg.Resolve("a")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestNameFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/response/hello":      "response/hello",
		"/response/hello/":     "response/hello",
		"/response/hello.html": "response/hello",
		"response//hello":      "response/hello",
		"/":                    "",
		"":                     "",
	}
	for in, want := range tests {
		assert.Equal(t, want, view.NameFromPath(in), in)
	}
}
