// Package service exposes the receipt book over Connect RPC and plain HTTP
// downloads.
package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/receiptbook/internal/calculator"
	"github.com/mmynk/receiptbook/internal/editor"
	"github.com/mmynk/receiptbook/internal/ledger"
	"github.com/mmynk/receiptbook/internal/models"
)

// ReceiptService implements the ReceiptService RPC interface.
type ReceiptService struct {
	editor *editor.Editor
	store  *ledger.Store
	logger *slog.Logger
}

// NewReceiptService creates a receipt service over an editor and the store
// it writes to.
func NewReceiptService(ed *editor.Editor, store *ledger.Store, logger *slog.Logger) *ReceiptService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReceiptService{editor: ed, store: store, logger: logger}
}

func (s *ReceiptService) draftResponse(n *editor.Notice) *connect.Response[DraftResponse] {
	resp := &DraftResponse{Draft: s.editor.Draft()}
	if n != nil {
		resp.Notice = toNotice(*n)
	}
	return connect.NewResponse(resp)
}

// GetDraft returns the draft currently being edited.
func (s *ReceiptService) GetDraft(ctx context.Context, req *connect.Request[GetDraftRequest]) (*connect.Response[DraftResponse], error) {
	return s.draftResponse(nil), nil
}

// NewDraft discards the draft and starts a blank one with the next
// suggested receipt number.
func (s *ReceiptService) NewDraft(ctx context.Context, req *connect.Request[NewDraftRequest]) (*connect.Response[DraftResponse], error) {
	n := s.editor.Reset()
	return s.draftResponse(&n), nil
}

// UpdateRow sets one row amount on the draft.
func (s *ReceiptService) UpdateRow(ctx context.Context, req *connect.Request[UpdateRowRequest]) (*connect.Response[DraftResponse], error) {
	if err := s.editor.SetRowAmount(req.Msg.Index, req.Msg.Amount); err != nil {
		return nil, s.toConnectError(err)
	}
	return s.draftResponse(nil), nil
}

// UpdateField sets a text attribute on the draft.
func (s *ReceiptService) UpdateField(ctx context.Context, req *connect.Request[UpdateFieldRequest]) (*connect.Response[DraftResponse], error) {
	if err := s.editor.SetField(editor.Field(req.Msg.Field), req.Msg.Value); err != nil {
		return nil, s.toConnectError(err)
	}
	return s.draftResponse(nil), nil
}

// SaveDraft validates and stores the draft.
func (s *ReceiptService) SaveDraft(ctx context.Context, req *connect.Request[SaveDraftRequest]) (*connect.Response[DraftResponse], error) {
	n, err := s.editor.Save(ctx)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return s.draftResponse(&n), nil
}

// EditReceipt loads a copy of a stored receipt into the draft.
func (s *ReceiptService) EditReceipt(ctx context.Context, req *connect.Request[EditReceiptRequest]) (*connect.Response[DraftResponse], error) {
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ledger.ErrMissingID)
	}
	if err := s.editor.Edit(req.Msg.ID); err != nil {
		return nil, s.toConnectError(err)
	}
	return s.draftResponse(nil), nil
}

// DeleteReceipt removes a stored receipt. Confirm must be set.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, req *connect.Request[DeleteReceiptRequest]) (*connect.Response[DeleteReceiptResponse], error) {
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ledger.ErrMissingID)
	}
	n, err := s.editor.Delete(ctx, req.Msg.ID, req.Msg.Confirm)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&DeleteReceiptResponse{Notice: toNotice(n)}), nil
}

// ListReceipts returns stored receipts matching every non-empty filter.
func (s *ReceiptService) ListReceipts(ctx context.Context, req *connect.Request[ListReceiptsRequest]) (*connect.Response[ListReceiptsResponse], error) {
	receipts := s.store.Filter(ledger.Query{
		Name:  req.Msg.Name,
		House: req.Msg.House,
		No:    req.Msg.No,
	})
	if receipts == nil {
		receipts = []models.Receipt{}
	}
	return connect.NewResponse(&ListReceiptsResponse{Receipts: receipts}), nil
}

// GetStats returns the collection total and receipt count.
func (s *ReceiptService) GetStats(ctx context.Context, req *connect.Request[GetStatsRequest]) (*connect.Response[GetStatsResponse], error) {
	stats := s.store.Stats()
	return connect.NewResponse(&GetStatsResponse{
		TotalCollection: stats.TotalCollection,
		TotalReceipts:   stats.TotalReceipts,
	}), nil
}

// SuggestReceiptNo returns the number a new draft would get.
func (s *ReceiptService) SuggestReceiptNo(ctx context.Context, req *connect.Request[SuggestReceiptNoRequest]) (*connect.Response[SuggestReceiptNoResponse], error) {
	return connect.NewResponse(&SuggestReceiptNoResponse{ReceiptNo: s.store.NextSuggestedReceiptNo()}), nil
}

// AmountInWords spells out an arbitrary amount.
func (s *ReceiptService) AmountInWords(ctx context.Context, req *connect.Request[AmountInWordsRequest]) (*connect.Response[AmountInWordsResponse], error) {
	return connect.NewResponse(&AmountInWordsResponse{Words: calculator.Words(req.Msg.Amount)}), nil
}

func (s *ReceiptService) toConnectError(err error) error {
	var verr *editor.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, calculator.ErrRowIndex),
		errors.Is(err, calculator.ErrNegativeAmount),
		errors.Is(err, ledger.ErrMissingID):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, editor.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, editor.ErrConfirmationRequired):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		s.logger.Error("Receipt operation failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
