package domi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClientTokenPrecedence(t *testing.T) {
	t.Setenv(EnvAPIToken, "env-token")

	t.Run("environment token is the default", func(t *testing.T) {
		c := NewClient()
		assert.Equal(t, "env-token", c.token)
	})

	t.Run("explicit token wins over environment", func(t *testing.T) {
		c := NewClient(WithToken("explicit-token"))
		assert.Equal(t, "explicit-token", c.token)
	})
}

func TestCloneWithToken(t *testing.T) {
	c := NewClient(WithToken("original"), WithBaseURL("http://upstream.test"))
	clone := c.CloneWithToken("per-call")

	assert.Equal(t, "per-call", clone.token)
	assert.Equal(t, "http://upstream.test", clone.baseURL)
	assert.Equal(t, c.pollInterval, clone.pollInterval)
	assert.Equal(t, "original", c.token)
}

func TestDefaultClientReused(t *testing.T) {
	c := NewClient(WithToken("shared"))
	SetDefault(c)

	assert.Same(t, c, DefaultClient())
	assert.Same(t, DefaultClient(), DefaultClient())
}
