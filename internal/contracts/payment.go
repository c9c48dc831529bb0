package contracts

import domainPayment "Rateio/internal/domain/payment"

// PaymentSubmitRequest chega como multipart/form-data: o comprovante, quando
// presente, vem no campo de arquivo "receipt".
type PaymentSubmitRequest struct {
	UnitId    string  `form:"unit_id" binding:"required"`
	Amount    float64 `form:"amount" binding:"required,gt=0"`
	Date      string  `form:"date" binding:"required"`
	Reference string  `form:"reference" binding:"omitempty,max=255"`
}

type PendingUpdateRequest struct {
	Amount    *float64 `json:"amount" binding:"omitempty,gt=0"`
	Reference *string  `json:"reference" binding:"omitempty,max=255"`
}

type ApproveRequest struct {
	Amount    *float64 `json:"amount" binding:"omitempty,gt=0"`
	Reference *string  `json:"reference" binding:"omitempty,max=255"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=255"`
}

type PaymentResponse struct {
	Payment *domainPayment.Payment `json:"payment"`
}

type PendingResponse struct {
	Pending *domainPayment.PendingPayment `json:"pending"`
}

type PendingListResponse struct {
	Pending []*domainPayment.PendingPayment `json:"pending"`
	Total   int                             `json:"total"`
}

type ArchivedResponse struct {
	Archived *domainPayment.ArchivedPayment `json:"archived"`
}
