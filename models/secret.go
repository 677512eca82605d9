package models

import "time"

// Secret is the shared secret currently active for an issuer.
// There is at most one per issuer; setting a new value overwrites the old one.
type Secret struct {
	Issuer    string    `json:"issuer"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
