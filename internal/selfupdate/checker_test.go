package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		latestTag     string
		currentVer    string
		wantAvailable bool
	}{
		{"newer release", "v2.0.0", "v1.0.0", true},
		{"same version", "v1.0.0", "v1.0.0", false},
		{"older release", "v1.0.0", "v2.0.0", false},
		{"tag without v prefix", "2.0.0", "v1.0.0", true},
		{"current without v prefix", "v2.0.0", "1.0.0", true},
		{"dev build always updates", "v1.0.0", "(devel)", true},
		{"patch bump", "v1.0.1", "v1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/repos/arjunm/violino/releases/latest", r.URL.Path)
				fmt.Fprintf(w, `{"tag_name":%q}`, tt.latestTag)
			}))
			defer server.Close()

			checker := NewChecker(WithBaseURL(server.URL))
			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.currentVer})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, result.UpdateAvailable)
			assert.Equal(t, tt.latestTag, result.LatestVersion)
		})
	}

	t.Run("invalid release tag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"release-candidate"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid version")
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 500")
	})
}
