// Package keepalive issues periodic self-requests to prevent the hosting
// platform from idling the process. Purely a hosting workaround, not a
// functional requirement of the business logic.
package keepalive

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultInterval is the ping period. Hosts idle after 15 minutes of
// silence, so ping slightly below that.
const DefaultInterval = 14 * time.Minute

// Pinger periodically requests its own health endpoint.
type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client
	stop     chan struct{}
	once     sync.Once
}

// New creates a Pinger for the given externally reachable base URL.
// Returns nil when no base URL is configured, all Pinger methods are
// nil-safe so callers don't have to branch.
func New(baseURL string, interval time.Duration) *Pinger {
	if baseURL == "" {
		return nil
	}

	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Pinger{
		url:      strings.TrimSuffix(baseURL, "/") + "/health",
		interval: interval,
		client:   &http.Client{Timeout: 30 * time.Second},
		stop:     make(chan struct{}),
	}
}

// Start launches the ping loop in the background.
func (p *Pinger) Start() {
	if p == nil {
		return
	}

	log.Info().Str("url", p.url).Dur("interval", p.interval).Msg("keep-alive pinger started")

	go p.run()
}

// Stop terminates the ping loop. Safe to call more than once.
func (p *Pinger) Stop() {
	if p == nil {
		return
	}

	p.once.Do(func() { close(p.stop) })
}

func (p *Pinger) run() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.ping()
		case <-p.stop:
			return
		}
	}
}

// ping performs one self-request. Failures are logged and the loop continues.
func (p *Pinger) ping() {
	resp, err := p.client.Get(p.url)
	if err != nil {
		log.Warn().Err(err).Str("url", p.url).Msg("keep-alive ping failed")
		return
	}

	_ = resp.Body.Close()

	log.Debug().Str("url", p.url).Int("status", resp.StatusCode).Msg("keep-alive ping sent")
}
