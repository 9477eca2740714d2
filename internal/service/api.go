package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// ReceiptServiceName is the fully-qualified name of the receipt service.
	ReceiptServiceName = "receiptbook.v1.ReceiptService"
	// AuthServiceName is the fully-qualified name of the auth service.
	AuthServiceName = "receiptbook.v1.AuthService"
)

// Procedure paths, usable as HTTP routes and in interceptors.
const (
	ReceiptServiceGetDraftProcedure         = "/" + ReceiptServiceName + "/GetDraft"
	ReceiptServiceNewDraftProcedure         = "/" + ReceiptServiceName + "/NewDraft"
	ReceiptServiceUpdateRowProcedure        = "/" + ReceiptServiceName + "/UpdateRow"
	ReceiptServiceUpdateFieldProcedure      = "/" + ReceiptServiceName + "/UpdateField"
	ReceiptServiceSaveDraftProcedure        = "/" + ReceiptServiceName + "/SaveDraft"
	ReceiptServiceEditReceiptProcedure      = "/" + ReceiptServiceName + "/EditReceipt"
	ReceiptServiceDeleteReceiptProcedure    = "/" + ReceiptServiceName + "/DeleteReceipt"
	ReceiptServiceListReceiptsProcedure     = "/" + ReceiptServiceName + "/ListReceipts"
	ReceiptServiceGetStatsProcedure         = "/" + ReceiptServiceName + "/GetStats"
	ReceiptServiceSuggestReceiptNoProcedure = "/" + ReceiptServiceName + "/SuggestReceiptNo"
	ReceiptServiceAmountInWordsProcedure    = "/" + ReceiptServiceName + "/AmountInWords"
	AuthServiceLoginProcedure               = "/" + AuthServiceName + "/Login"
)

// NewReceiptServiceHandler builds an HTTP handler serving every receipt
// service procedure. It returns the path prefix to mount it on.
func NewReceiptServiceHandler(svc *ReceiptService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ReceiptServiceGetDraftProcedure, connect.NewUnaryHandler(ReceiptServiceGetDraftProcedure, svc.GetDraft, opts...))
	mux.Handle(ReceiptServiceNewDraftProcedure, connect.NewUnaryHandler(ReceiptServiceNewDraftProcedure, svc.NewDraft, opts...))
	mux.Handle(ReceiptServiceUpdateRowProcedure, connect.NewUnaryHandler(ReceiptServiceUpdateRowProcedure, svc.UpdateRow, opts...))
	mux.Handle(ReceiptServiceUpdateFieldProcedure, connect.NewUnaryHandler(ReceiptServiceUpdateFieldProcedure, svc.UpdateField, opts...))
	mux.Handle(ReceiptServiceSaveDraftProcedure, connect.NewUnaryHandler(ReceiptServiceSaveDraftProcedure, svc.SaveDraft, opts...))
	mux.Handle(ReceiptServiceEditReceiptProcedure, connect.NewUnaryHandler(ReceiptServiceEditReceiptProcedure, svc.EditReceipt, opts...))
	mux.Handle(ReceiptServiceDeleteReceiptProcedure, connect.NewUnaryHandler(ReceiptServiceDeleteReceiptProcedure, svc.DeleteReceipt, opts...))
	mux.Handle(ReceiptServiceListReceiptsProcedure, connect.NewUnaryHandler(ReceiptServiceListReceiptsProcedure, svc.ListReceipts, opts...))
	mux.Handle(ReceiptServiceGetStatsProcedure, connect.NewUnaryHandler(ReceiptServiceGetStatsProcedure, svc.GetStats, opts...))
	mux.Handle(ReceiptServiceSuggestReceiptNoProcedure, connect.NewUnaryHandler(ReceiptServiceSuggestReceiptNoProcedure, svc.SuggestReceiptNo, opts...))
	mux.Handle(ReceiptServiceAmountInWordsProcedure, connect.NewUnaryHandler(ReceiptServiceAmountInWordsProcedure, svc.AmountInWords, opts...))

	return "/" + ReceiptServiceName + "/", mux
}

// NewAuthServiceHandler builds an HTTP handler for the auth service.
func NewAuthServiceHandler(svc *AuthService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	return AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...)
}

// ReceiptServiceClient calls a remote receipt service.
type ReceiptServiceClient struct {
	getDraft         *connect.Client[GetDraftRequest, DraftResponse]
	newDraft         *connect.Client[NewDraftRequest, DraftResponse]
	updateRow        *connect.Client[UpdateRowRequest, DraftResponse]
	updateField      *connect.Client[UpdateFieldRequest, DraftResponse]
	saveDraft        *connect.Client[SaveDraftRequest, DraftResponse]
	editReceipt      *connect.Client[EditReceiptRequest, DraftResponse]
	deleteReceipt    *connect.Client[DeleteReceiptRequest, DeleteReceiptResponse]
	listReceipts     *connect.Client[ListReceiptsRequest, ListReceiptsResponse]
	getStats         *connect.Client[GetStatsRequest, GetStatsResponse]
	suggestReceiptNo *connect.Client[SuggestReceiptNoRequest, SuggestReceiptNoResponse]
	amountInWords    *connect.Client[AmountInWordsRequest, AmountInWordsResponse]
}

// NewReceiptServiceClient creates a client for the service at baseURL
// (e.g., "http://localhost:8080").
func NewReceiptServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ReceiptServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &ReceiptServiceClient{
		getDraft:         connect.NewClient[GetDraftRequest, DraftResponse](httpClient, baseURL+ReceiptServiceGetDraftProcedure, opts...),
		newDraft:         connect.NewClient[NewDraftRequest, DraftResponse](httpClient, baseURL+ReceiptServiceNewDraftProcedure, opts...),
		updateRow:        connect.NewClient[UpdateRowRequest, DraftResponse](httpClient, baseURL+ReceiptServiceUpdateRowProcedure, opts...),
		updateField:      connect.NewClient[UpdateFieldRequest, DraftResponse](httpClient, baseURL+ReceiptServiceUpdateFieldProcedure, opts...),
		saveDraft:        connect.NewClient[SaveDraftRequest, DraftResponse](httpClient, baseURL+ReceiptServiceSaveDraftProcedure, opts...),
		editReceipt:      connect.NewClient[EditReceiptRequest, DraftResponse](httpClient, baseURL+ReceiptServiceEditReceiptProcedure, opts...),
		deleteReceipt:    connect.NewClient[DeleteReceiptRequest, DeleteReceiptResponse](httpClient, baseURL+ReceiptServiceDeleteReceiptProcedure, opts...),
		listReceipts:     connect.NewClient[ListReceiptsRequest, ListReceiptsResponse](httpClient, baseURL+ReceiptServiceListReceiptsProcedure, opts...),
		getStats:         connect.NewClient[GetStatsRequest, GetStatsResponse](httpClient, baseURL+ReceiptServiceGetStatsProcedure, opts...),
		suggestReceiptNo: connect.NewClient[SuggestReceiptNoRequest, SuggestReceiptNoResponse](httpClient, baseURL+ReceiptServiceSuggestReceiptNoProcedure, opts...),
		amountInWords:    connect.NewClient[AmountInWordsRequest, AmountInWordsResponse](httpClient, baseURL+ReceiptServiceAmountInWordsProcedure, opts...),
	}
}

func (c *ReceiptServiceClient) GetDraft(ctx context.Context, req *connect.Request[GetDraftRequest]) (*connect.Response[DraftResponse], error) {
	return c.getDraft.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) NewDraft(ctx context.Context, req *connect.Request[NewDraftRequest]) (*connect.Response[DraftResponse], error) {
	return c.newDraft.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) UpdateRow(ctx context.Context, req *connect.Request[UpdateRowRequest]) (*connect.Response[DraftResponse], error) {
	return c.updateRow.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) UpdateField(ctx context.Context, req *connect.Request[UpdateFieldRequest]) (*connect.Response[DraftResponse], error) {
	return c.updateField.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) SaveDraft(ctx context.Context, req *connect.Request[SaveDraftRequest]) (*connect.Response[DraftResponse], error) {
	return c.saveDraft.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) EditReceipt(ctx context.Context, req *connect.Request[EditReceiptRequest]) (*connect.Response[DraftResponse], error) {
	return c.editReceipt.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) DeleteReceipt(ctx context.Context, req *connect.Request[DeleteReceiptRequest]) (*connect.Response[DeleteReceiptResponse], error) {
	return c.deleteReceipt.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) ListReceipts(ctx context.Context, req *connect.Request[ListReceiptsRequest]) (*connect.Response[ListReceiptsResponse], error) {
	return c.listReceipts.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) GetStats(ctx context.Context, req *connect.Request[GetStatsRequest]) (*connect.Response[GetStatsResponse], error) {
	return c.getStats.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) SuggestReceiptNo(ctx context.Context, req *connect.Request[SuggestReceiptNoRequest]) (*connect.Response[SuggestReceiptNoResponse], error) {
	return c.suggestReceiptNo.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) AmountInWords(ctx context.Context, req *connect.Request[AmountInWordsRequest]) (*connect.Response[AmountInWordsResponse], error) {
	return c.amountInWords.CallUnary(ctx, req)
}

// AuthServiceClient calls a remote auth service.
type AuthServiceClient struct {
	login *connect.Client[LoginRequest, LoginResponse]
}

// NewAuthServiceClient creates a client for the auth service at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &AuthServiceClient{
		login: connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
	}
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}
