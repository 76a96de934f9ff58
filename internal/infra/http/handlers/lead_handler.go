package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/londonlets/api/internal/infra/http/middleware"
	"github.com/londonlets/api/internal/usecase"
)

// LeadHandler serves the public lead-capture form.
type LeadHandler struct {
	SubmitUC    *usecase.SubmitLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(submitUC *usecase.SubmitLeadUseCase) *LeadHandler {
	return &LeadHandler{
		SubmitUC:    submitUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

type SubmitLeadResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *LeadHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, SubmitLeadResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, SubmitLeadResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	output, err := h.SubmitUC.Execute(ctx, input)
	if err != nil {
		switch {
		case usecase.IsDomainError(err):
			writeJSON(w, http.StatusBadRequest, SubmitLeadResponse{Success: false, Message: err.Error()})
		case usecase.IsTechnicalError(err):
			writeJSON(w, http.StatusServiceUnavailable, SubmitLeadResponse{Success: false, Message: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, SubmitLeadResponse{Success: false, Message: "Something went wrong"})
		}
		return
	}

	middleware.RecordLeadCaptured(input.InterestedIn)
	writeJSON(w, http.StatusOK, SubmitLeadResponse{Success: true, ID: output.ID})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// RateLimiter is a fixed-window per-IP limiter for the public form.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
