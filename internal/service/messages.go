package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/receiptbook/internal/editor"
	"github.com/mmynk/receiptbook/internal/models"
)

// Notice is a transient operator message.
type Notice struct {
	Text           string `json:"text"`
	Kind           string `json:"kind"`
	DismissAfterMs int64  `json:"dismissAfterMs"`
}

func toNotice(n editor.Notice) *Notice {
	return &Notice{
		Text:           n.Text,
		Kind:           string(n.Kind),
		DismissAfterMs: editor.NoticeDuration.Milliseconds(),
	}
}

// DraftResponse carries the current draft after an editor operation.
type DraftResponse struct {
	Draft  models.Receipt `json:"draft"`
	Notice *Notice        `json:"notice,omitempty"`
}

type GetDraftRequest struct{}

type NewDraftRequest struct{}

type UpdateRowRequest struct {
	Index  int             `json:"index"`
	Amount decimal.Decimal `json:"amount"`
}

type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type SaveDraftRequest struct{}

type EditReceiptRequest struct {
	ID string `json:"id"`
}

type DeleteReceiptRequest struct {
	ID string `json:"id"`
	// Confirm must be true; the operator has to acknowledge every delete.
	Confirm bool `json:"confirm"`
}

type DeleteReceiptResponse struct {
	Notice *Notice `json:"notice"`
}

type ListReceiptsRequest struct {
	Name  string `json:"name"`
	House string `json:"house"`
	No    string `json:"no"`
}

type ListReceiptsResponse struct {
	Receipts []models.Receipt `json:"receipts"`
}

type GetStatsRequest struct{}

type GetStatsResponse struct {
	TotalCollection decimal.Decimal `json:"totalCollection"`
	TotalReceipts   int             `json:"totalReceipts"`
}

type SuggestReceiptNoRequest struct{}

type SuggestReceiptNoResponse struct {
	ReceiptNo int `json:"receiptNo"`
}

type AmountInWordsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type AmountInWordsResponse struct {
	Words string `json:"words"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"` // Unix seconds
}
