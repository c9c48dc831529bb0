package contracts

import domainBill "Rateio/internal/domain/bill"

type BillUpsertRequest struct {
	Month     int     `json:"month" binding:"required,gte=1,lte=12"`
	Year      int     `json:"year" binding:"required,gte=2000,lte=2200"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	IssueDate string  `json:"issue_date" binding:"required"`
}

type BillResponse struct {
	Bill *domainBill.Bill `json:"bill"`
}

type BillListResponse struct {
	Bills []*domainBill.Bill `json:"bills"`
	Total int                `json:"total"`
}
