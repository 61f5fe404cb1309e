package funcs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/minimality"
)

func TestGmic(t *testing.T) {
	f := exact.NewRational(2, 5)
	fn := Gmic(f)
	require.True(t, exact.Eq(fn.Evaluate(f), exact.One()))
	require.True(t, exact.Eq(fn.Evaluate(exact.NewRational(1, 5)), exact.NewRational(1, 2)))
	require.True(t, minimality.Minimal(fn, f))

	require.Panics(t, func() { Gmic(exact.Zero()) })
	require.Panics(t, func() { Gmic(exact.One()) })
}

func TestNotExtremeCoarse(t *testing.T) {
	fn, f := NotExtremeCoarse()
	require.True(t, exact.Eq(f, exact.NewRational(1, 5)))
	require.True(t, minimality.Minimal(fn, f))
	require.True(t, exact.Eq(fn.Evaluate(exact.NewRational(1, 2)), exact.NewRational(5, 12)))
}
