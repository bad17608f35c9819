package domain

import "time"

// PageInstance is the view state owned by one mounted home page.
type PageInstance struct {
	ID        string
	Likes     int
	MountedAt time.Time
	// TouchedAt is refreshed on every read or like and drives idle eviction.
	TouchedAt time.Time
}

// LikeRecorded is published after a like has been applied to an instance.
type LikeRecorded struct {
	InstanceID string `json:"instance_id"`
	Likes      int    `json:"likes"`
}
