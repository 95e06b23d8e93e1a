package service

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDevServer_PreviewRendersCurrentContent(t *testing.T) {
	calls := 0
	s := NewDevServer(":0", func() (string, error) {
		calls++
		return ".button { color: red; }", nil
	})

	ts := httptest.NewServer(s.router())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)
	require.Equal(t, 1, calls)
}

func TestDevServer_ClientCountStartsAtZero(t *testing.T) {
	s := NewDevServer(":0", func() (string, error) { return "", nil })
	require.Equal(t, 0, s.ClientCount())
}
