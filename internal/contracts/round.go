package contracts

import domainRound "Rateio/internal/domain/round"

type RoundCreateRequest struct {
	Title     string   `json:"title" binding:"required,max=100"`
	Target    float64  `json:"target" binding:"required,gt=0"`
	StartDate string   `json:"start_date" binding:"required"`
	UnitIds   []string `json:"unit_ids" binding:"required,min=1"`
	Remarks   string   `json:"remarks" binding:"omitempty,max=255"`
}

type RoundUpdateRequest struct {
	Title     string   `json:"title" binding:"required,max=100"`
	Target    float64  `json:"target" binding:"required,gt=0"`
	StartDate string   `json:"start_date" binding:"required"`
	UnitIds   []string `json:"unit_ids" binding:"required,min=1"`
	Remarks   string   `json:"remarks" binding:"omitempty,max=255"`
}

type RoundResponse struct {
	Round *domainRound.CollectionRound `json:"round"`
}

type RoundListResponse struct {
	Rounds []*domainRound.CollectionRound `json:"rounds"`
	Total  int                            `json:"total"`
}

type RoundProgressResponse struct {
	Progress *domainRound.Progress `json:"progress"`
}
