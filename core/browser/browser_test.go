package browser_test

import (
	"errors"
	"testing"

	"static-launcher/core/browser"

	"github.com/stretchr/testify/assert"
)

func TestOpenerFunc(t *testing.T) {
	var got string
	o := browser.OpenerFunc(func(url string) error {
		got = url
		return nil
	})

	assert.NoError(t, o.Open("http://localhost:8001"))
	assert.Equal(t, "http://localhost:8001", got)
}

func TestOpenerFunc_Error(t *testing.T) {
	want := errors.New("no browser")
	o := browser.OpenerFunc(func(string) error { return want })

	assert.ErrorIs(t, o.Open("http://localhost:8001"), want)
}

func TestNop(t *testing.T) {
	assert.NoError(t, browser.Nop().Open("http://localhost:8001"))
}

func TestSystem(t *testing.T) {
	assert.Implements(t, (*browser.Opener)(nil), browser.System())
}
