package binder_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/bindkit/core/binder"
)

// Property-based tests using rapid

func kindGen() *rapid.Generator[binder.Kind] {
	return rapid.SampledFrom([]binder.Kind{binder.String, binder.Int, binder.Int64, binder.Bool})
}

func defaultFor(t *rapid.T, kind binder.Kind) string {
	switch kind {
	case binder.Int, binder.Int64:
		return strconv.Itoa(rapid.IntRange(-1000, 1000).Draw(t, "intDefault"))
	case binder.Bool:
		return strconv.FormatBool(rapid.Bool().Draw(t, "boolDefault"))
	}
	return rapid.String().Draw(t, "stringDefault")
}

func TestBindScalar_PropertyBased_DefaultAppliesToAbsentAndEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := kindGen().Draw(t, "kind")
		def := defaultFor(t, kind)
		spec := binder.Spec{
			Name:     "p",
			Kind:     kind,
			Required: rapid.Bool().Draw(t, "required"),
			Default:  binder.Default(def),
		}

		absent, err := binder.BindScalar(binder.Values{}, spec)
		require.NoError(t, err)
		empty, err := binder.BindScalar(binder.Values{"p": {""}}, spec)
		require.NoError(t, err)
		fromDefault, err := binder.BindScalar(binder.Values{"p": {def}}, spec)
		require.NoError(t, err)

		assert.Equal(t, absent, empty)
		if def != "" {
			assert.Equal(t, fromDefault, absent)
		}
	})
}

func TestBindScalar_PropertyBased_RequiredWithoutDefaultFailsWhenAbsent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		spec := binder.Spec{
			Name:     rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "name"),
			Kind:     kindGen().Draw(t, "kind"),
			Required: true,
		}

		_, err := binder.BindScalar(binder.Values{}, spec)
		assert.ErrorIs(t, err, binder.ErrMissingParameter)
	})
}

func TestBindScalar_PropertyBased_RequiredStringAcceptsEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "name")
		got, err := binder.BindScalar(binder.Values{name: {""}}, binder.Spec{Name: name, Kind: binder.String, Required: true})
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}

func TestBindScalar_PropertyBased_IntRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int().Draw(t, "n")
		got, err := binder.BindScalar(binder.Values{"n": {strconv.Itoa(n)}}, binder.Spec{Name: "n", Kind: binder.Int, Required: true})
		require.NoError(t, err)
		assert.Equal(t, n, got)
	})
}

func TestBindScalar_PropertyBased_NonNumericFailsConversion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9]{0,10}`).Draw(t, "text")
		_, err := binder.BindScalar(binder.Values{"n": {text}}, binder.Spec{Name: "n", Kind: binder.Int, Required: true})
		assert.ErrorIs(t, err, binder.ErrTypeConversion)
	})
}

func TestBindMap_PropertyBased_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.MapOf(
			rapid.StringMatching(`[a-z]{1,6}`),
			rapid.SliceOfN(rapid.String(), 1, 3),
		).Draw(t, "raw")

		got := binder.BindMap(binder.Values(raw))

		require.Len(t, got, len(raw))
		for key, vals := range raw {
			s, ok := got.String(key)
			require.True(t, ok, key)
			assert.Equal(t, vals[0], s)
		}
	})
}
