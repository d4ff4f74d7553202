package dto

import "time"

// MetricsSnapshot is a point-in-time view of process counters.
type MetricsSnapshot struct {
	CacheHitRatio            float64   `json:"cacheHitRatio"`
	CacheHits                uint64    `json:"cacheHits"`
	CacheMisses              uint64    `json:"cacheMisses"`
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	StoreCalls               uint64    `json:"storeCalls"`
	StoreErrors              uint64    `json:"storeErrors"`
	AverageStoreDurationMs   float64   `json:"averageStoreDurationMs"`
	ReportsRendered          uint64    `json:"reportsRendered"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}
