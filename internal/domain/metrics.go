package domain

import "time"

type Theme string

const (
	ThemeDeveloper Theme = "developer"
	ThemeGamer     Theme = "gamer"
)

var Themes = []Theme{ThemeDeveloper, ThemeGamer}

type Page string

const (
	PageHome  Page = "home"
	PageAbout Page = "about"
	PageWork  Page = "work"
)

var Pages = []Page{PageHome, PageAbout, PageWork}

var pageRoutes = map[string]Page{
	"/":      PageHome,
	"/about": PageAbout,
	"/work":  PageWork,
}

// PageForPath maps an exact request path to a tracked page.
func PageForPath(path string) (Page, bool) {
	p, ok := pageRoutes[path]
	return p, ok
}

type Memory struct {
	Used   uint64 `json:"used"`
	Total  uint64 `json:"total"`
	System uint64 `json:"system"`
	Free   uint64 `json:"free"`
}

type Security struct {
	SuspiciousRequests uint64     `json:"suspiciousRequests"`
	BlockedIPs         []string   `json:"blockedIPs"`
	LastSecurityEvent  *time.Time `json:"lastSecurityEvent"`
}

type MetricsSnapshot struct {
	StartTime time.Time        `json:"startTime"`
	Uptime    int64            `json:"uptime"`
	Requests  uint64           `json:"requests"`
	Errors    uint64           `json:"errors"`
	Themes    map[Theme]uint64 `json:"themes"`
	PageViews map[Page]uint64  `json:"pageViews"`
	Security  Security         `json:"security"`
	Memory    Memory           `json:"memory"`
	Timestamp time.Time        `json:"timestamp"`
	Alerts    []Alert          `json:"alerts"`
}

type Health struct {
	Status    string    `json:"status"`
	Uptime    int64     `json:"uptime"`
	Memory    Memory    `json:"memory"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
