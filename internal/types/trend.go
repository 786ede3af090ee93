package types

import "time"

// Trend is one aggregate market metric row. At most one Trend exists per
// (Date, MetricName, MetricValue, Sector, Country) tuple; that tuple is the
// storage conflict target.
type Trend struct {
	Date        time.Time `json:"date"`
	MetricName  string    `json:"metric_name"`
	MetricValue string    `json:"metric_value"`
	Count       int       `json:"count"`
	Sector      string    `json:"sector,omitempty"`
	Country     string    `json:"country,omitempty"`
}
