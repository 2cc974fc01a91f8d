package content_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"folio/internal/content"
	"folio/internal/domain"
)

func TestCategoryCreateAndDelete(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody domain.Category
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		if r.Method == http.MethodPost {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(domain.Category{ID: 9, Name: gotBody.Name, Slug: gotBody.Slug})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := content.NewClient(srv.URL, srv.Client()).WithToken("tok")

	created, err := c.CreateCategory(context.Background(), domain.Category{Name: "Go & Testing", Slug: "go-testing"})
	require.NoError(t, err)
	require.Equal(t, "/api/blog/admin/categories", gotPath)
	require.Equal(t, "go-testing", gotBody.Slug)
	require.Equal(t, 9, created.ID)

	require.NoError(t, c.DeleteCategory(context.Background(), 9))
	require.Equal(t, "/api/blog/admin/categories/9", gotPath)
	require.Equal(t, http.MethodDelete, gotMethod)
}

func TestReadlistMembershipReplacesPosts(t *testing.T) {
	var body struct {
		Posts []domain.Post `json:"posts"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/blog/admin/readlists/4", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := content.NewClient(srv.URL, srv.Client()).WithToken("tok")
	posts := []domain.Post{{ID: 3}, {ID: 1}, {ID: 2}}
	require.NoError(t, c.UpdateReadlistPosts(context.Background(), 4, posts))

	// Ordering is the membership: first to last.
	require.Len(t, body.Posts, 3)
	require.Equal(t, 3, body.Posts[0].ID)
	require.Equal(t, 1, body.Posts[1].ID)
	require.Equal(t, 2, body.Posts[2].ID)
}

func TestAdminReadlistFetchesMembership(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/blog/admin/readlists/4", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":4,"title":"Weekend Reads","slug":"weekend-reads","posts":[{"id":1,"title":"Hello"}]}`))
	}))
	defer srv.Close()

	c := content.NewClient(srv.URL, srv.Client()).WithToken("tok")
	list, err := c.AdminReadlist(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, "Weekend Reads", list.Title)
	require.Len(t, list.Posts, 1)
}

func TestSaveAboutPostsFullPage(t *testing.T) {
	var body domain.About
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/about/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := content.NewClient(srv.URL, srv.Client()).WithToken("tok")
	a := domain.About{Headline: "Hi, I build things", Body: "bio text", PhotoURL: "/media/me.jpg"}
	require.NoError(t, c.SaveAbout(context.Background(), a))
	require.Equal(t, "Hi, I build things", body.Headline)
}
