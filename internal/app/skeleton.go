package app

import "github.com/alexanderramin/dayweave/internal/domain"

// Skeleton is the plan proposed by the external planning oracle: ordered
// time blocks, each classified into a zone and carrying draft tasks.
type Skeleton struct {
	Date   string      `json:"date,omitempty"` // YYYY-MM-DD
	Blocks []TimeBlock `json:"blocks"`
}

type TimeBlock struct {
	Name      string          `json:"name"`
	StartTime string          `json:"start_time"` // HH:MM
	EndTime   string          `json:"end_time"`   // HH:MM
	Zone      domain.ZoneType `json:"zone"`
	Tasks     []DraftTask     `json:"tasks"`
}

// DraftTask is one loosely-typed task proposed by the oracle.
type DraftTask struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	TypeHint    string `json:"type,omitempty"`
	Priority    int    `json:"priority,omitempty"`
}
