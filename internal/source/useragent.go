package source

import "sync/atomic"

// userAgents is the default pool of browser user agents the fetcher rotates
// through. Sites that blanket-block unknown clients usually accept these.
//
//nolint: gochecknoglobals, lll
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:126.0) Gecko/20100101 Firefox/126.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Edg/124.0.0.0",
}

// uaPool hands out user agents round-robin. Rotation spreads requests across
// agent strings instead of hammering a site with a single one.
type uaPool struct {
	agents []string
	next   atomic.Uint64
}

func newUAPool(agents []string) *uaPool {
	if len(agents) == 0 {
		agents = userAgents
	}

	return &uaPool{agents: agents}
}

func (p *uaPool) pick() string {
	n := p.next.Add(1)

	return p.agents[int(n-1)%len(p.agents)]
}
