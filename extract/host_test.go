package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHost(t *testing.T) {
	t.Run("full host block", func(t *testing.T) {
		body := "Hosted by JordanJoined in 2019 ... 87% response rate ... Superhost"

		host := extractHost(body)

		require.NotNil(t, host.Name)
		require.NotNil(t, host.JoinedYear)
		require.NotNil(t, host.ResponseRate)
		assert.Equal(t, "Jordan", *host.Name)
		assert.Equal(t, 2019, *host.JoinedYear)
		assert.Equal(t, 87, *host.ResponseRate)
		assert.True(t, host.IsSuperhost)
	})

	t.Run("no host phrase is a soft miss", func(t *testing.T) {
		host := extractHost("A lovely trailer with no host section at all")

		assert.Nil(t, host.Name)
		assert.Nil(t, host.JoinedYear)
		assert.Nil(t, host.ResponseRate)
		assert.False(t, host.IsSuperhost)
	})

	t.Run("response rate without host phrase", func(t *testing.T) {
		host := extractHost("93% response rate")

		assert.Nil(t, host.Name)
		assert.Nil(t, host.JoinedYear)
		require.NotNil(t, host.ResponseRate)
		assert.Equal(t, 93, *host.ResponseRate)
	})
}
