package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/Bradley1112/nurture-sub001/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://example.com/` + tag + `"}`))
	}))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		latestTag     string
		current       string
		wantAvailable bool
	}{
		{"newer available", "v2.1.0", "v1.0.0", true},
		{"already latest", "v1.0.0", "v1.0.0", false},
		{"running ahead of release", "v1.0.0", "v1.1.0", false},
		{"tag without v prefix", "2.0.0", "v1.0.0", true},
		{"current without v prefix", "v2.0.0", "1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := releaseServer(t, tt.latestTag)
			defer server.Close()

			checker := NewChecker(WithBaseURL(server.URL))
			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, result.UpdateAvailable)
			assert.Equal(t, tt.latestTag, result.LatestVersion)
		})
	}
}

func TestCheck_DevBuild(t *testing.T) {
	checker := NewChecker()
	_, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestCheck_InvalidTag(t *testing.T) {
	server := releaseServer(t, "nightly")
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid version")
}

func TestCheck_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
