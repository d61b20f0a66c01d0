package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/core/binder"
)

func TestQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/request-param?username=hello&age=20&age=30", nil)
	raw := binder.Query(req)

	assert.Equal(t, binder.Values{"username": {"hello"}, "age": {"20", "30"}}, raw)
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("query_only", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/?username=hello", nil)
		raw, err := binder.FromRequest(req)
		require.NoError(t, err)
		assert.Equal(t, binder.Values{"username": {"hello"}}, raw)
	})

	t.Run("urlencoded_body_after_query", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/?username=query", strings.NewReader("username=body&age=20"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		raw, err := binder.FromRequest(req)
		require.NoError(t, err)
		assert.Equal(t, []string{"query", "body"}, raw.All("username"))
		age, ok := raw.Get("age")
		assert.True(t, ok)
		assert.Equal(t, "20", age)
	})

	t.Run("body_is_restored", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("username=hello"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

		_, err := binder.FromRequest(req)
		require.NoError(t, err)

		body, err := binder.Text(req)
		require.NoError(t, err)
		assert.Equal(t, "username=hello", body)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("username", "hello"))
		require.NoError(t, mw.WriteField("age", "20"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		raw, err := binder.FromRequest(req)
		require.NoError(t, err)
		assert.Equal(t, binder.Values{"username": {"hello"}, "age": {"20"}}, raw)
	})

	t.Run("multipart_without_boundary", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
		req.Header.Set("Content-Type", "multipart/form-data")

		_, err := binder.FromRequest(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("json_body_is_not_parameters", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/?a=1", strings.NewReader(`{"b":2}`))
		req.Header.Set("Content-Type", "application/json")

		raw, err := binder.FromRequest(req)
		require.NoError(t, err)
		assert.Equal(t, binder.Values{"a": {"1"}}, raw)
	})

	t.Run("malformed_urlencoded", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		_, err := binder.FromRequest(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("body_too_large", func(t *testing.T) {
		t.Parallel()

		body := "a=" + strings.Repeat("x", binder.DefaultMaxBodySize)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		_, err := binder.FromRequest(req)
		assert.ErrorIs(t, err, binder.ErrFailedToReadBody)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        binder.Values
		wantErr     error
	}{
		{
			name:        "flat_object",
			contentType: "application/json",
			body:        `{"username":"hello","age":20}`,
			want:        binder.Values{"username": {"hello"}, "age": {"20"}},
		},
		{
			name:        "charset_parameter",
			contentType: "application/json; charset=utf-8",
			body:        `{"active":true,"price":9.50}`,
			want:        binder.Values{"active": {"true"}, "price": {"9.50"}},
		},
		{
			name:        "arrays_and_null",
			contentType: "application/json",
			body:        `{"ids":[1,2,null],"nickname":null}`,
			want:        binder.Values{"ids": {"1", "2"}},
		},
		{
			name:    "missing_content_type",
			body:    `{}`,
			wantErr: binder.ErrMissingContentType,
		},
		{
			name:        "wrong_media_type",
			contentType: "text/plain",
			body:        `{}`,
			wantErr:     binder.ErrUnsupportedMediaType,
		},
		{
			name:        "empty_body",
			contentType: "application/json",
			body:        ``,
			wantErr:     binder.ErrFailedToParseJSON,
		},
		{
			name:        "nested_values_are_skipped",
			contentType: "application/json",
			body:        `{"username":"hello","meta":{"x":1},"tags":["a",{"b":2},["c"]]}`,
			want:        binder.Values{"username": {"hello"}, "tags": {"a"}},
		},
		{
			name:        "integral_numbers",
			contentType: "application/json",
			body:        `{"age":20.0,"big":2e3,"ratio":0.5,"huge":1e300}`,
			want:        binder.Values{"age": {"20"}, "big": {"2000"}, "ratio": {"0.5"}, "huge": {"1e300"}},
		},
		{
			name:        "top_level_array",
			contentType: "application/json",
			body:        `[1,2]`,
			wantErr:     binder.ErrFailedToParseJSON,
		},
		{
			name:        "trailing_data",
			contentType: "application/json",
			body:        `{"a":"b"}{"c":"d"}`,
			wantErr:     binder.ErrFailedToParseJSON,
		},
		{
			name:        "invalid_json",
			contentType: "application/json",
			body:        `{"a":`,
			wantErr:     binder.ErrFailedToParseJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			got, err := binder.JSON(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSON_BindsWithSchema(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"hello","age":20}`))
	req.Header.Set("Content-Type", "application/json")

	raw, err := binder.JSON(req)
	require.NoError(t, err)

	obj, err := binder.MustSchema(
		binder.Spec{Name: "username", Kind: binder.String, Required: true},
		binder.Spec{Name: "age", Kind: binder.Int, Required: true},
	).Bind(raw)
	require.NoError(t, err)
	assert.Equal(t, binder.Object{"username": "hello", "age": 20}, obj)
}

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("utf8_default", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hello 세계"))
		body, err := binder.Text(req)
		require.NoError(t, err)
		assert.Equal(t, "hello 세계", body)
	})

	t.Run("latin1_decoded", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte{'c', 'a', 'f', 0xe9}))
		req.Header.Set("Content-Type", "text/plain; charset=ISO-8859-1")

		body, err := binder.Text(req)
		require.NoError(t, err)
		assert.Equal(t, "café", body)
	})

	t.Run("unknown_charset", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
		req.Header.Set("Content-Type", "text/plain; charset=klingon")

		_, err := binder.Text(req)
		assert.ErrorIs(t, err, binder.ErrUnsupportedCharset)
	})

	t.Run("empty_body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		body, err := binder.Text(req)
		require.NoError(t, err)
		assert.Empty(t, body)
	})
}

func TestValues(t *testing.T) {
	t.Parallel()

	src := map[string][]string{"b": {"2"}, "a": {"1", "x"}}
	v := binder.NewValues(src)
	src["a"][0] = "changed"

	first, ok := v.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", first)
	assert.Equal(t, []string{"a", "b"}, v.Keys())
	assert.True(t, v.Has("b"))
	assert.False(t, v.Has("c"))

	all := v.All("a")
	all[0] = "mutated"
	assert.Equal(t, []string{"1", "x"}, v.All("a"))

	_, ok = binder.Values{"empty": {}}.Get("empty")
	assert.False(t, ok)
}
