package binder_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/core/binder"
)

func TestBindObject_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("present_values", func(t *testing.T) {
		t.Parallel()

		raw := binder.Values{"username": {"hello"}, "age": {"20"}}
		obj, err := binder.BindObject(raw, []binder.Spec{
			{Name: "username", Kind: binder.String, Required: true},
			{Name: "age", Kind: binder.Int, Required: true},
		})
		require.NoError(t, err)
		assert.Equal(t, binder.Object{"username": "hello", "age": 20}, obj)
	})

	t.Run("defaults_on_empty_request", func(t *testing.T) {
		t.Parallel()

		obj, err := binder.BindObject(binder.Values{}, []binder.Spec{
			{Name: "username", Kind: binder.String, Required: true, Default: binder.Default("guest")},
			{Name: "age", Kind: binder.Int, Required: true, Default: binder.Default("-1")},
		})
		require.NoError(t, err)
		assert.Equal(t, binder.Object{"username": "guest", "age": -1}, obj)
	})

	t.Run("required_empty_string", func(t *testing.T) {
		t.Parallel()

		obj, err := binder.BindObject(binder.Values{"username": {""}}, []binder.Spec{
			{Name: "username", Kind: binder.String, Required: true},
		})
		require.NoError(t, err)
		username, ok := obj.String("username")
		assert.True(t, ok)
		assert.Equal(t, "", username)
	})

	t.Run("required_missing", func(t *testing.T) {
		t.Parallel()

		obj, err := binder.BindObject(binder.Values{}, []binder.Spec{
			{Name: "username", Kind: binder.String, Required: true},
		})
		require.Error(t, err)
		assert.Nil(t, obj)

		var missing *binder.MissingParameterError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "username", missing.Name)
	})
}

func TestBindObject_IgnoresUndeclaredKeys(t *testing.T) {
	t.Parallel()

	raw := binder.Values{"username": {"hello"}, "admin": {"true"}}
	obj, err := binder.BindObject(raw, []binder.Spec{{Name: "username", Kind: binder.String}})
	require.NoError(t, err)
	assert.Equal(t, binder.Object{"username": "hello"}, obj)
}

func TestBindObject_OmitsAbsentOptionalFields(t *testing.T) {
	t.Parallel()

	obj, err := binder.BindObject(binder.Values{"username": {"hello"}}, []binder.Spec{
		{Name: "username", Kind: binder.String},
		{Name: "nickname", Kind: binder.String},
		{Name: "age", Kind: binder.Int, Nullable: true},
	})
	require.NoError(t, err)
	assert.True(t, obj.Has("username"))
	assert.False(t, obj.Has("nickname"))
	assert.False(t, obj.Has("age"))

	_, ok := obj.Int("age")
	assert.False(t, ok)
}

func TestBindObject_ReportsAllFailuresInOrder(t *testing.T) {
	t.Parallel()

	raw := binder.Values{"age": {"abc"}, "height": {"tall"}}
	_, err := binder.BindObject(raw, []binder.Spec{
		{Name: "username", Kind: binder.String, Required: true},
		{Name: "age", Kind: binder.Int, Required: true},
		{Name: "height", Kind: binder.Float64, Required: true},
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, binder.ErrMissingParameter)
	assert.ErrorIs(t, err, binder.ErrTypeConversion)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	errs := joined.Unwrap()
	require.Len(t, errs, 3)

	var missing *binder.MissingParameterError
	require.ErrorAs(t, errs[0], &missing)
	assert.Equal(t, "username", missing.Name)

	var conv *binder.TypeConversionError
	require.ErrorAs(t, errs[1], &conv)
	assert.Equal(t, "age", conv.Name)
	require.ErrorAs(t, errs[2], &conv)
	assert.Equal(t, "height", conv.Name)
}

func TestBindObject_InvalidSpecFailsBeforeBinding(t *testing.T) {
	t.Parallel()

	_, err := binder.BindObject(binder.Values{"age": {"1"}}, []binder.Spec{
		{Name: "age", Kind: binder.Int},
	})
	assert.ErrorIs(t, err, binder.ErrInvalidSpec)
}

func TestObjectAccessors(t *testing.T) {
	t.Parallel()

	obj := binder.Object{
		"s":    "text",
		"i":    7,
		"i64":  int64(8),
		"f":    1.5,
		"b":    true,
		"ss":   []string{"a"},
		"is":   []int{1, 2},
		"none": nil,
	}

	s, ok := obj.String("s")
	assert.True(t, ok)
	assert.Equal(t, "text", s)

	i, ok := obj.Int("i")
	assert.True(t, ok)
	assert.Equal(t, 7, i)

	i64, ok := obj.Int64("i64")
	assert.True(t, ok)
	assert.Equal(t, int64(8), i64)

	f, ok := obj.Float64("f")
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	b, ok := obj.Bool("b")
	assert.True(t, ok)
	assert.True(t, b)

	ss, ok := obj.Strings("ss")
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, ss)

	is, ok := obj.Ints("is")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, is)

	_, ok = obj.Int("s")
	assert.False(t, ok, "wrong type must not match")
}

func TestNewSchema_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fields  []binder.Spec
		wantErr error
	}{
		{
			name:    "optional_int_without_default",
			fields:  []binder.Spec{{Name: "age", Kind: binder.Int}},
			wantErr: binder.ErrInvalidSpec,
		},
		{
			name:    "optional_bool_without_default",
			fields:  []binder.Spec{{Name: "active", Kind: binder.Bool}},
			wantErr: binder.ErrInvalidSpec,
		},
		{
			name:    "bad_default",
			fields:  []binder.Spec{{Name: "age", Kind: binder.Int, Default: binder.Default("abc")}},
			wantErr: binder.ErrInvalidSpec,
		},
		{
			name:    "bad_multi_default",
			fields:  []binder.Spec{{Name: "ids", Kind: binder.Int, Multi: true, Default: binder.Default("1,x")}},
			wantErr: binder.ErrInvalidSpec,
		},
		{
			name:    "empty_name",
			fields:  []binder.Spec{{Name: " ", Kind: binder.String}},
			wantErr: binder.ErrInvalidSpec,
		},
		{
			name: "duplicate",
			fields: []binder.Spec{
				{Name: "a", Kind: binder.String},
				{Name: "a", Kind: binder.String},
			},
			wantErr: binder.ErrInvalidSpec,
		},
		{
			name:    "unsupported_kind",
			fields:  []binder.Spec{{Name: "a", Kind: binder.Kind(42), Required: true}},
			wantErr: binder.ErrUnsupportedType,
		},
		{
			name: "valid",
			fields: []binder.Spec{
				{Name: "username", Kind: binder.String},
				{Name: "age", Kind: binder.Int, Nullable: true},
				{Name: "page", Kind: binder.Int, Default: binder.Default("1")},
				{Name: "ids", Kind: binder.Int, Multi: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			schema, err := binder.NewSchema(tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, schema)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.fields, schema.Fields())
		})
	}
}

func TestMustSchema_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		binder.MustSchema(binder.Spec{Name: "age", Kind: binder.Int})
	})
	assert.NotPanics(t, func() {
		binder.MustSchema(binder.Spec{Name: "age", Kind: binder.Int, Required: true})
	})
}

func TestSchema_ConcurrentBind(t *testing.T) {
	t.Parallel()

	schema := binder.MustSchema(
		binder.Spec{Name: "username", Kind: binder.String, Required: true},
		binder.Spec{Name: "age", Kind: binder.Int, Default: binder.Default("-1")},
	)
	raw := binder.Values{"username": {"hello"}}

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			obj, err := schema.Bind(raw)
			if err != nil {
				errs <- err
				return
			}
			if age, _ := obj.Int("age"); age != -1 {
				errs <- errors.New("unexpected age")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
