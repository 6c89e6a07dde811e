package entities

import "time"

// Master — выездной техник. Справочник ведётся снаружи, ядро его только читает.
type Master struct {
	ID        int64
	Name      string
	Cities    []string
	IsActive  bool
	CreatedAt time.Time
}
