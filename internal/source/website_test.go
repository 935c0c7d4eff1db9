package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mailscout/internal/source"
	"mailscout/pkg/domain"
)

func TestWebsitePages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "":
			_, _ = w.Write([]byte("<html>home</html>"))
		case "/contact":
			_, _ = w.Write([]byte("<html>sales@acme.com</html>"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := source.NewWebsite(source.NewFetcher(srv.Client(), source.FetcherOptions{RetryBase: time.Millisecond}))
	require.Equal(t, domain.SourceWebsite, c.Type())

	pages, srcErrs, err := c.Pages(context.Background(), domain.TargetDescriptor{
		CompanyName: "Acme",
		WebsiteURL:  srv.URL,
	})
	require.NoError(t, err)

	require.Len(t, pages, 2, "homepage and /contact should succeed")
	require.Equal(t, srv.URL, pages[0].URL)
	require.Equal(t, srv.URL+"/contact", pages[1].URL)
	require.Equal(t, domain.SourceWebsite, pages[0].Type)

	require.Len(t, srcErrs, 6, "the remaining probe paths should report soft errors")
	for _, se := range srcErrs {
		require.Equal(t, domain.SourceWebsite, se.Source)
		require.NotEmpty(t, se.Reason)
	}
}

func TestWebsiteInertWithoutTarget(t *testing.T) {
	c := source.NewWebsite(nil)

	pages, srcErrs, err := c.Pages(context.Background(), domain.TargetDescriptor{CompanyName: "Acme"})
	require.NoError(t, err)
	require.Empty(t, pages)
	require.Empty(t, srcErrs)
}

func TestWebsiteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := source.NewWebsite(source.NewFetcher(nil, source.FetcherOptions{RetryBase: time.Millisecond}))

	_, _, err := c.Pages(ctx, domain.TargetDescriptor{Domain: "acme.com"})
	require.ErrorIs(t, err, context.Canceled)
}
