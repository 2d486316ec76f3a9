package must_test

import (
	"testing"

	"github.com/initiative-sh/initiative/internal/must"
	"github.com/stretchr/testify/assert"
)

func TestBef(t *testing.T) {
	assert.NotPanics(t, func() { must.Bef(true, "ok") })
	assert.PanicsWithError(t, "boom: 42", func() { must.Bef(false, "boom: %d", 42) })
}

func TestNotBef(t *testing.T) {
	assert.NotPanics(t, func() { must.NotBef(false, "ok") })
	assert.Panics(t, func() { must.NotBef(true, "boom") })
}

func TestBeLessEqf(t *testing.T) {
	assert.NotPanics(t, func() { must.BeLessEqf(1, 1, "ok") })
	assert.NotPanics(t, func() { must.BeLessEqf(0, 1, "ok") })
	assert.Panics(t, func() { must.BeLessEqf(2, 1, "boom") })
}

func TestNotBeNilf(t *testing.T) {
	assert.NotPanics(t, func() { must.NotBeNilf(42, "ok") })
	assert.Panics(t, func() { must.NotBeNilf(nil, "boom") })
}

func TestFailf(t *testing.T) {
	assert.Panics(t, func() { must.Failf("always") })
}
