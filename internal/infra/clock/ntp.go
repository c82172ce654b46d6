package clock

import (
	"fmt"
	"sync"
	"time"

	"github.com/beevik/ntp"

	"reactor.de/timehandler/internal/domain"
)

// DefaultNTPServer is queried when no server is named.
const DefaultNTPServer = "pool.ntp.org"

const ntpTimeout = 3 * time.Second

// queryFunc matches ntp.QueryWithOptions.
type queryFunc func(host string, opt ntp.QueryOptions) (*ntp.Response, error)

// NTPService corrects a base clock by the offset measured against an NTP
// server. The server is queried once, on the first call to Now; if that
// fails the base clock is used unchanged.
type NTPService struct {
	base   domain.Clock
	server string
	logger domain.Logger
	query  queryFunc

	once   sync.Once
	offset time.Duration
}

// NewNTPService wraps base. An empty server selects DefaultNTPServer.
func NewNTPService(base domain.Clock, server string, logger domain.Logger) *NTPService {
	if server == "" {
		server = DefaultNTPServer
	}
	return &NTPService{
		base:   base,
		server: server,
		logger: logger,
		query:  ntp.QueryWithOptions,
	}
}

// Server returns the NTP host this clock queries.
func (s *NTPService) Server() string {
	return s.server
}

// Now returns the base clock's time plus the measured offset.
func (s *NTPService) Now() time.Time {
	s.once.Do(func() {
		offset, err := s.Offset()
		if err != nil {
			s.logger.Warning("ntp query to %s failed, using the local clock: %v", s.server, err)
			return
		}
		s.logger.Info("ntp offset from %s is %s", s.server, offset)
		s.offset = offset
	})
	return s.base.Now().Add(s.offset)
}

// Offset queries the server and returns how far the local clock is behind
// it. A positive offset means the local clock is slow.
func (s *NTPService) Offset() (time.Duration, error) {
	resp, err := s.query(s.server, ntp.QueryOptions{Timeout: ntpTimeout})
	if err != nil {
		return 0, fmt.Errorf("failed to query %s: %w", s.server, err)
	}
	if err := resp.Validate(); err != nil {
		return 0, fmt.Errorf("invalid response from %s: %w", s.server, err)
	}
	return resp.ClockOffset, nil
}
