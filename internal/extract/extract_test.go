package extract_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"mailscout/internal/extract"
	"mailscout/pkg/domain"
)

func byAddress(candidates []domain.CandidateEmail) map[string]domain.CandidateEmail {
	out := make(map[string]domain.CandidateEmail, len(candidates))
	for _, c := range candidates {
		out[c.Address] = c
	}

	return out
}

func TestFromHTMLMailtoLink(t *testing.T) {
	markup := `<html><body>
		<a href="mailto:Sales@Acme.com?subject=Hello">Write to sales</a>
		<a href="mailto:info%40acme.com">Info</a>
	</body></html>`

	got := byAddress(extract.FromHTML("https://acme.com/contact", domain.SourceWebsite, markup))

	require.Len(t, got, 2)
	require.Equal(t, domain.MethodMailtoLink, got["sales@acme.com"].Method)
	require.Equal(t, domain.MethodMailtoLink, got["info@acme.com"].Method)
	require.Equal(t, "https://acme.com/contact", got["sales@acme.com"].SourceURL)
	require.Equal(t, domain.SourceWebsite, got["sales@acme.com"].SourceType)
}

func TestFromHTMLVisibleTextWithContext(t *testing.T) {
	markup := `<html><body><p>For partnership inquiries reach out to jane.doe@acme.com at any time.</p></body></html>`

	got := byAddress(extract.FromHTML("https://acme.com", domain.SourceWebsite, markup))

	cand, ok := got["jane.doe@acme.com"]
	require.True(t, ok)
	require.Equal(t, domain.MethodVisibleText, cand.Method)
	require.Contains(t, cand.Context, "partnership inquiries")
}

func TestFromHTMLDeobfuscation(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "bracket tokens",
			markup: `<p>contact [at] acme [dot] com</p>`,
			want:   "contact@acme.com",
		},
		{
			name:   "paren tokens",
			markup: `<p>support (at) acme (dot) io</p>`,
			want:   "support@acme.io",
		},
		{
			name:   "word form",
			markup: `<p>write to hello at acme dot com for details</p>`,
			want:   "hello@acme.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := byAddress(extract.FromHTML("https://acme.com", domain.SourceWebsite, tt.markup))

			cand, ok := got[tt.want]
			require.True(t, ok, "expected %s in %v", tt.want, got)
			require.Equal(t, domain.MethodDeobfuscated, cand.Method)
		})
	}
}

func TestFromHTMLContextStaysValidUTF8(t *testing.T) {
	// Multi-byte runes on both sides of the match so the context window and
	// its length cap both land mid-rune.
	markup := `<p>` + strings.Repeat("é", 80) + ` jane@acme.com ` + strings.Repeat("é", 80) + `</p>`

	candidates := extract.FromHTML("https://acme.com", domain.SourceWebsite, markup)
	require.NotEmpty(t, candidates)

	for _, c := range candidates {
		require.True(t, utf8.ValidString(c.Context), "context %q should be valid utf-8", c.Context)
	}
}

func TestFromHTMLHiddenInMarkup(t *testing.T) {
	markup := `<html><body>
		<!-- old contact: legacy@acme.com -->
		<div data-email="ceo@acme.com">Leadership</div>
		<script>var contact = {"email": "ops@acme.com"};</script>
	</body></html>`

	got := byAddress(extract.FromHTML("https://acme.com", domain.SourceWebsite, markup))

	require.Equal(t, domain.MethodHTMLOnly, got["legacy@acme.com"].Method)
	require.Equal(t, domain.MethodStructured, got["ceo@acme.com"].Method)
	require.Equal(t, domain.MethodStructured, got["ops@acme.com"].Method)
}

func TestFromHTMLWordGlueRepair(t *testing.T) {
	markup := `<p>Contact sales@acme.comSales team is available 24/7.</p>`

	got := byAddress(extract.FromHTML("https://acme.com", domain.SourceWebsite, markup))

	_, glued := got["sales@acme.comsales"]
	require.False(t, glued, "glued address should have been repaired")

	cand, ok := got["sales@acme.com"]
	require.True(t, ok)
	require.Equal(t, domain.MethodVisibleText, cand.Method)
}

func TestFromHTMLRejectsNoise(t *testing.T) {
	markup := `<html><body>
		<img src="logo@2x.png">
		<p>user@example.com</p>
		<p>4f1c9a2b8e77d0aa113355779900aabb@acme.com</p>
		<link href="style@print.css">
	</body></html>`

	got := extract.FromHTML("https://acme.com", domain.SourceWebsite, markup)
	require.Empty(t, got)
}

func TestFromHTMLDirectoryProfileRegion(t *testing.T) {
	markup := `<html><body>
		<div class="ci-email">founder@acme.com</div>
		<div class="comments">random@elsewhere.net</div>
	</body></html>`

	got := byAddress(extract.FromHTML("https://www.linkedin.com/company/acme", domain.SourceDirectory, markup))

	require.Equal(t, domain.MethodDirectoryProfile, got["founder@acme.com"].Method)
	require.Equal(t, domain.MethodVisibleText, got["random@elsewhere.net"].Method)
}

func TestFromHTMLMethodPriority(t *testing.T) {
	markup := `<html><body>
		<a href="mailto:sales@acme.com">sales@acme.com</a>
		<p>sales@acme.com</p>
	</body></html>`

	got := extract.FromHTML("https://acme.com", domain.SourceWebsite, markup)

	require.Len(t, got, 1, "same address should be merged across strategies")
	require.Equal(t, domain.MethodMailtoLink, got[0].Method)
}

func TestFromHTMLUnparseableFallsBackToRawScan(t *testing.T) {
	raw := `garbage <<<> press@acme.com more garbage`

	got := byAddress(extract.FromHTML("https://acme.com", domain.SourceWebsite, raw))

	cand, ok := got["press@acme.com"]
	require.True(t, ok)
	require.NotEmpty(t, cand.Method)
}
