package models

import "time"

// Profile records the onboarding state of the single local user.
type Profile struct {
	Name                   string    `json:"name"`
	HasCompletedOnboarding bool      `json:"hasCompletedOnboarding"`
	JoinedAt               time.Time `json:"joinedAt"`
}
