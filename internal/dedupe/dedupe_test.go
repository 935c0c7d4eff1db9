package dedupe_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mailscout/internal/dedupe"
	"mailscout/pkg/domain"
)

func scored(address string, s int, src domain.SourceType, m domain.ExtractionMethod, at time.Time) domain.ScoredCandidate {
	return domain.ScoredCandidate{
		CandidateEmail: domain.CandidateEmail{
			Address:      address,
			SourceType:   src,
			Method:       m,
			DiscoveredAt: at,
		},
		Score: s,
	}
}

func TestMergeCollapsesSameAddress(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)

	hits := dedupe.Merge([]domain.ScoredCandidate{
		scored("sales@acme.com", 70, domain.SourceWebsite, domain.MethodVisibleText, t1),
		scored("sales@acme.com", 85, domain.SourceDirectory, domain.MethodMailtoLink, t0),
	})

	require.Len(t, hits, 1)

	hit := hits[0]
	require.Equal(t, "sales@acme.com", hit.Address)
	require.Equal(t, 85, hit.Confidence, "confidence should be the best single score")
	require.Equal(t, t0, hit.DiscoveredAt, "earliest sighting wins")
	require.ElementsMatch(t, []string{"website", "directory"}, hit.Sources)
	require.ElementsMatch(t, []string{"visible_text", "mailto_link"}, hit.Methods)
	require.True(t, hit.Verified, "mailto candidates mark the hit verified")
	require.Equal(t, "Business", hit.Role)
}

func TestMergeOrdering(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	hits := dedupe.Merge([]domain.ScoredCandidate{
		scored("late@acme.com", 80, domain.SourceWebsite, domain.MethodVisibleText, t1),
		scored("early@acme.com", 80, domain.SourceWebsite, domain.MethodVisibleText, t0),
		scored("best@acme.com", 95, domain.SourceWebsite, domain.MethodVisibleText, t1),
	})

	require.Len(t, hits, 3)
	require.Equal(t, "best@acme.com", hits[0].Address)
	require.Equal(t, "early@acme.com", hits[1].Address, "equal confidence ties break by earliest discovery")
	require.Equal(t, "late@acme.com", hits[2].Address)
}

func TestMergeNoVerifiedWithoutMailto(t *testing.T) {
	hits := dedupe.Merge([]domain.ScoredCandidate{
		scored("info@acme.com", 70, domain.SourceWebsite, domain.MethodVisibleText, time.Now()),
	})

	require.Len(t, hits, 1)
	require.False(t, hits[0].Verified)
}

func TestMergeEmpty(t *testing.T) {
	require.Empty(t, dedupe.Merge(nil))
}
