package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testTarget struct {
	value int
	name  string
}

func TestApply(t *testing.T) {
	target := &testTarget{}

	err := Apply(target,
		NoError(func(tt *testTarget) { tt.value = 42 }),
		NoError(func(tt *testTarget) { tt.name = "configured" }),
	)
	require.NoError(t, err)
	require.Equal(t, 42, target.value)
	require.Equal(t, "configured", target.name)
}

func TestApply_StopsOnError(t *testing.T) {
	target := &testTarget{}
	boom := errors.New("boom")

	err := Apply(target,
		NoError(func(tt *testTarget) { tt.value = 1 }),
		New(func(tt *testTarget) error { return boom }),
		NoError(func(tt *testTarget) { tt.value = 2 }),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, target.value) // later options not applied
}

func TestApply_NoOptions(t *testing.T) {
	target := &testTarget{}
	require.NoError(t, Apply(target))
}
