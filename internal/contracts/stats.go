package contracts

import domainStats "Rateio/internal/domain/stats"

type OverrideRequest struct {
	Enabled bool    `json:"enabled"`
	Target  float64 `json:"target" binding:"omitempty,gte=0"`
}

type UnclaimedRequest struct {
	Amount float64 `json:"amount" binding:"gte=0"`
}

type StatsResponse struct {
	Stats *domainStats.GlobalStats `json:"stats"`
}

type SummaryResponse struct {
	Summary *domainStats.Summary `json:"summary"`
}
