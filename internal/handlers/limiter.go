package handlers

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterSweepInterval = time.Minute

// claimLimiter throttles claim clicks per user. It never decides who wins a
// shift; that is settled by the store.
type claimLimiter struct {
	mu        sync.Mutex
	perMinute int
	users     map[string]*rate.Limiter
	lastSweep time.Time
	now       func() time.Time
}

func newClaimLimiter(perMinute int) *claimLimiter {
	return &claimLimiter{
		perMinute: perMinute,
		users:     make(map[string]*rate.Limiter),
		now:       time.Now,
	}
}

func (l *claimLimiter) Allow(userID string) bool {
	if l.perMinute <= 0 {
		return true
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= limiterSweepInterval {
		l.sweep(now)
	}

	lim, ok := l.users[userID]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute)
		l.users[userID] = lim
	}
	return lim.AllowN(now, 1)
}

// sweep drops limiters whose bucket has refilled, since a fresh limiter
// behaves the same. Caller holds mu.
func (l *claimLimiter) sweep(now time.Time) {
	for userID, lim := range l.users {
		if lim.TokensAt(now) >= float64(lim.Burst()) {
			delete(l.users, userID)
		}
	}
	l.lastSweep = now
}
