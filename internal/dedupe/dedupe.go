// Package dedupe merges scored candidates from all sources into one ranked
// hit per address.
package dedupe

import (
	"sort"

	"mailscout/internal/score"
	"mailscout/pkg/domain"
)

// Merge collapses candidates sharing an address into a single EmailHit.
// Confidence is the best score any single source produced, sources and
// methods accumulate, and the earliest sighting wins the discovery time.
// Hits are ordered by descending confidence, ties broken by earliest
// discovery and then by address.
func Merge(candidates []domain.ScoredCandidate) []domain.EmailHit {
	hits := make(map[string]*domain.EmailHit, len(candidates))

	for _, c := range candidates {
		hit, ok := hits[c.Address]
		if !ok {
			hit = &domain.EmailHit{
				Address:      c.Address,
				Role:         score.RoleLabel(c.Address),
				Confidence:   c.Score,
				DiscoveredAt: c.DiscoveredAt,
			}
			hits[c.Address] = hit
		}

		if c.Score > hit.Confidence {
			hit.Confidence = c.Score
		}

		if c.DiscoveredAt.Before(hit.DiscoveredAt) {
			hit.DiscoveredAt = c.DiscoveredAt
		}

		hit.Sources = appendUnique(hit.Sources, string(c.SourceType))
		hit.Methods = appendUnique(hit.Methods, string(c.Method))

		if c.Method == domain.MethodMailtoLink {
			hit.Verified = true
		}
	}

	out := make([]domain.EmailHit, 0, len(hits))
	for _, hit := range hits {
		out = append(out, *hit)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}

		if !out[i].DiscoveredAt.Equal(out[j].DiscoveredAt) {
			return out[i].DiscoveredAt.Before(out[j].DiscoveredAt)
		}

		return out[i].Address < out[j].Address
	})

	return out
}

func appendUnique(list []string, val string) []string {
	for _, v := range list {
		if v == val {
			return list
		}
	}

	return append(list, val)
}
