package entity

import "time"

// MarketNews is one headline shown in the market ticker.
type MarketNews struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"` // price, trend, market, development, news
	Borough   string    `json:"borough,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}
