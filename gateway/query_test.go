package gateway_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bipulsingh126/biziwit-admin/gateway"
)

func TestParams_Encode(t *testing.T) {
	t.Run("empty values are omitted", func(t *testing.T) {
		params := gateway.Params{"q": "report", "status": "", "page": "1"}
		require.Equal(t, "page=1&q=report", params.Encode())
	})

	t.Run("nil and empty maps encode to nothing", func(t *testing.T) {
		require.Equal(t, "", gateway.Params(nil).Encode())
		require.Equal(t, "", gateway.Params{}.Encode())
		require.Equal(t, "", gateway.Params{"q": ""}.Encode())
	})

	t.Run("values are escaped", func(t *testing.T) {
		params := gateway.Params{"q": "a b&c"}
		require.Equal(t, "q=a+b%26c", params.Encode())
	})
}
