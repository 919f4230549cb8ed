// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginProtection throttles login attempts per client IP: a fixed number
// of attempts within a sliding window, and a steady-state token bucket on
// top to slow down bursts.
type LoginProtection struct {
	ipLimiters *limiterCache[string]

	attempts   map[string]*loginWindow
	attemptsMu sync.Mutex

	maxAttempts int
	window      time.Duration
	log         *slog.Logger
}

// loginWindow counts attempts from one IP within the current window.
type loginWindow struct {
	count        int
	windowStart  time.Time
	blockedUntil time.Time
}

// LoginProtectionConfig holds configuration for login protection.
type LoginProtectionConfig struct {
	// MaxAttempts within the window before the IP is blocked (default: 5).
	MaxAttempts int
	// Window is the sliding window and block duration (default: 15 minutes).
	Window time.Duration
}

// NewLoginProtection creates a login protection instance.
func NewLoginProtection(cfg LoginProtectionConfig, log *slog.Logger) *LoginProtection {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.Window <= 0 {
		cfg.Window = 15 * time.Minute
	}
	if log == nil {
		log = slog.Default()
	}

	return &LoginProtection{
		// One request per 2 seconds sustained, burst of MaxAttempts.
		ipLimiters:  newLimiterCache[string](rate.Limit(0.5), cfg.MaxAttempts),
		attempts:    make(map[string]*loginWindow),
		maxAttempts: cfg.MaxAttempts,
		window:      cfg.Window,
		log:         log,
	}
}

// Allow records an attempt from ip and reports whether it may proceed.
// Once the attempt count reaches the limit the IP stays blocked for a
// full window from the last counted attempt.
func (lp *LoginProtection) Allow(ip string) bool {
	lp.attemptsMu.Lock()
	defer lp.attemptsMu.Unlock()

	now := time.Now()
	w, exists := lp.attempts[ip]
	if !exists {
		lp.attempts[ip] = &loginWindow{count: 1, windowStart: now}
		return true
	}

	if now.Before(w.blockedUntil) {
		return false
	}

	if now.Sub(w.windowStart) > lp.window {
		w.count = 1
		w.windowStart = now
		w.blockedUntil = time.Time{}
		return true
	}

	w.count++
	if w.count > lp.maxAttempts {
		w.blockedUntil = now.Add(lp.window)
		lp.log.Warn("login attempts blocked", "ip", ip, "attempts", w.count)
		return false
	}
	return true
}

// Reset clears attempt tracking for an IP after a successful login.
func (lp *LoginProtection) Reset(ip string) {
	lp.attemptsMu.Lock()
	defer lp.attemptsMu.Unlock()
	delete(lp.attempts, ip)
}

// Cleanup removes stale windows and oversized limiter caches. Meant to
// run periodically from a goroutine.
func (lp *LoginProtection) Cleanup() {
	if lp.ipLimiters.clearIfExceeds(10000) {
		lp.log.Info("cleared login rate limiters due to size")
	}

	now := time.Now()
	lp.attemptsMu.Lock()
	for ip, w := range lp.attempts {
		if now.After(w.blockedUntil) && now.Sub(w.windowStart) > lp.window {
			delete(lp.attempts, ip)
		}
	}
	lp.attemptsMu.Unlock()
}

// Middleware returns HTTP middleware enforcing the attempt limit on
// POST requests, answering 429 once an IP is over it.
func (lp *LoginProtection) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			ip := ClientIP(r)
			if !lp.ipLimiters.get(ip).Allow() || !lp.Allow(ip) {
				WriteAPIError(w, http.StatusTooManyRequests, "rate_limit_exceeded",
					"Too many login attempts, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
