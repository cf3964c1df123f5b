package sms

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type phoneLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ResendLimiter caps how often codes may be sent to one phone number: a
// token bucket refilling at maxPerHour tokens per hour, with at most one
// send per cooldown. Stale entries are dropped in the background.
type ResendLimiter struct {
	mu       sync.Mutex
	limiters map[string]*phoneLimiter
	r        rate.Limit
	burst    int
	cooldown time.Duration
	lastSend map[string]time.Time
	now      Clock
}

// NewResendLimiter creates a limiter allowing maxPerHour sends per phone per
// hour, never closer together than cooldown.
func NewResendLimiter(maxPerHour int, cooldown time.Duration) *ResendLimiter {
	if maxPerHour < 1 {
		maxPerHour = 1
	}
	rl := &ResendLimiter{
		limiters: make(map[string]*phoneLimiter),
		r:        rate.Every(time.Hour / time.Duration(maxPerHour)),
		burst:    maxPerHour,
		cooldown: cooldown,
		lastSend: make(map[string]time.Time),
		now:      time.Now,
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether one more code may be sent to the phone now, and
// consumes a token if so.
func (rl *ResendLimiter) Allow(phone string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	if last, ok := rl.lastSend[phone]; ok && now.Sub(last) < rl.cooldown {
		return false
	}
	l := rl.get(phone, now)
	if !l.Allow() {
		return false
	}
	rl.lastSend[phone] = now
	return true
}

// RetryAfter returns how long the caller must wait before the next send is
// accepted for the phone. Zero means a send is allowed now.
func (rl *ResendLimiter) RetryAfter(phone string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	var wait time.Duration
	if last, ok := rl.lastSend[phone]; ok {
		if d := rl.cooldown - now.Sub(last); d > wait {
			wait = d
		}
	}
	if v, ok := rl.limiters[phone]; ok && v.limiter.Tokens() < 1 {
		res := v.limiter.Reserve()
		if d := res.Delay(); d > wait {
			wait = d
		}
		res.Cancel()
	}
	return wait
}

func (rl *ResendLimiter) get(phone string, now time.Time) *rate.Limiter {
	if v, ok := rl.limiters[phone]; ok {
		v.lastSeen = now
		return v.limiter
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.limiters[phone] = &phoneLimiter{limiter: l, lastSeen: now}
	return l
}

// cleanup removes entries idle for over two hours.
func (rl *ResendLimiter) cleanup() {
	for {
		time.Sleep(10 * time.Minute)
		rl.mu.Lock()
		for p, v := range rl.limiters {
			if time.Since(v.lastSeen) > 2*time.Hour {
				delete(rl.limiters, p)
				delete(rl.lastSend, p)
			}
		}
		rl.mu.Unlock()
	}
}
