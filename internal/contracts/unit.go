package contracts

import domainUnit "Rateio/internal/domain/unit"

type UnitUpdateRequest struct {
	OwnerName     *string `json:"owner_name" binding:"omitempty,max=100"`
	IsHighlighted *bool   `json:"is_highlighted"`
	PublicNote    *string `json:"public_note" binding:"omitempty,max=255"`
}

type UnitResponse struct {
	Unit *domainUnit.Unit `json:"unit"`
}

type UnitListResponse struct {
	Units []*domainUnit.Unit `json:"units"`
	Total int                `json:"total"`
}

type UnitSeedResponse struct {
	Created int    `json:"created"`
	Message string `json:"message"`
}
