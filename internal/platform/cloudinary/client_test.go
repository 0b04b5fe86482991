package cloudinary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_SubFolders(t *testing.T) {
	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/folders/gallery", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"folders":[{"name":"weddings","path":"gallery/weddings"},{"name":"birthdays","path":"gallery/birthdays"}]}`))
	}))
	defer server.Close()
	client := NewClient("demo", "key", "secret", WithBaseURL(server.URL))
	// when
	folders, err := client.SubFolders(context.Background(), "gallery")
	// then
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "gallery/weddings", folders[0].Path)
}

func Test_Client_ResourcesByFolder_Paginates(t *testing.T) {
	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/resources/by_asset_folder", r.URL.Path)
		assert.Equal(t, "gallery/weddings", r.URL.Query().Get("asset_folder"))
		assert.Equal(t, "50", r.URL.Query().Get("max_results"))
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("next_cursor") == "" {
			_, _ = w.Write([]byte(`{"resources":[{"public_id":"gallery/weddings/rose-tier","secure_url":"https://res.cloudinary.com/demo/image/upload/v1/gallery/weddings/rose-tier.jpg"}],"next_cursor":"abc"}`))
			return
		}
		assert.Equal(t, "abc", r.URL.Query().Get("next_cursor"))
		_, _ = w.Write([]byte(`{"resources":[{"public_id":"gallery/weddings/gold-leaf"}]}`))
	}))
	defer server.Close()
	client := NewClient("demo", "key", "secret", WithBaseURL(server.URL))
	// when
	first, err := client.ResourcesByFolder(context.Background(), "gallery/weddings", 50, "")
	require.NoError(t, err)
	second, err := client.ResourcesByFolder(context.Background(), "gallery/weddings", 50, first.NextCursor)
	// then
	require.NoError(t, err)
	require.Len(t, first.Resources, 1)
	assert.Equal(t, "abc", first.NextCursor)
	require.Len(t, second.Resources, 1)
	assert.Empty(t, second.NextCursor)
}

func Test_Client_ErrorStatus(t *testing.T) {
	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid credentials"}}`))
	}))
	defer server.Close()
	client := NewClient("demo", "key", "wrong", WithBaseURL(server.URL))
	// when
	_, err := client.SubFolders(context.Background(), "")
	// then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
