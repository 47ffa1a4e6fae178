package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ktp-forked-repos/ibantools/internal/application/dto"
	"github.com/ktp-forked-repos/ibantools/internal/application/usecase"
)

// Compile-time assertion that Handler implements IdentifierServiceServer.
var _ IdentifierServiceServer = (*Handler)(nil)

// Handler implements the IdentifierServiceServer gRPC interface.
type Handler struct {
	UnimplementedIdentifierServiceServer
	uc     usecase.Set
	logger *slog.Logger
}

// NewHandler creates a new gRPC Handler.
func NewHandler(uc usecase.Set, logger *slog.Logger) *Handler {
	return &Handler{uc: uc, logger: logger}
}

func (h *Handler) ValidateIBAN(ctx context.Context, req *ValidateIBANRequest) (*ValidationResponse, error) {
	resp, err := h.uc.ValidateIBAN.Execute(ctx, dto.ValidateIBANRequest{IBAN: req.IBAN})
	if err != nil {
		return nil, h.internal(ctx, "ValidateIBAN", err)
	}
	return toValidationResponse(resp), nil
}

func (h *Handler) ExtractIBAN(ctx context.Context, req *ExtractIBANRequest) (*ExtractIBANResponse, error) {
	resp, err := h.uc.ExtractIBAN.Execute(ctx, dto.ExtractIBANRequest{IBAN: req.IBAN})
	if err != nil {
		return nil, h.internal(ctx, "ExtractIBAN", err)
	}
	out := &ExtractIBANResponse{Input: resp.Input, Valid: resp.Valid, Reason: resp.Reason}
	if d := resp.Details; d != nil {
		out.Details = &IBANDetailsMsg{
			IBAN:        d.IBAN,
			Friendly:    d.Friendly,
			BBAN:        d.BBAN,
			CountryCode: d.CountryCode,
			CountryName: d.CountryName,
			CheckDigits: d.CheckDigits,
		}
	}
	return out, nil
}

func (h *Handler) ComposeIBAN(ctx context.Context, req *ComposeIBANRequest) (*ComposeIBANResponse, error) {
	resp, err := h.uc.ComposeIBAN.Execute(ctx, dto.ComposeIBANRequest{CountryCode: req.CountryCode, BBAN: req.BBAN})
	if err != nil {
		return nil, h.internal(ctx, "ComposeIBAN", err)
	}
	out := &ComposeIBANResponse{Reason: resp.Reason}
	if resp.IBAN != nil {
		out.IBAN = *resp.IBAN
		out.Composed = true
	}
	return out, nil
}

func (h *Handler) FormatIBAN(ctx context.Context, req *FormatIBANRequest) (*FormatIBANResponse, error) {
	resp, err := h.uc.FormatIBAN.Execute(ctx, dto.FormatIBANRequest{IBAN: req.IBAN, Separator: req.Separator})
	if err != nil {
		return nil, h.internal(ctx, "FormatIBAN", err)
	}
	return &FormatIBANResponse{Electronic: resp.Electronic, Friendly: resp.Friendly}, nil
}

func (h *Handler) ValidateBBAN(ctx context.Context, req *ValidateBBANRequest) (*ValidationResponse, error) {
	resp, err := h.uc.ValidateBBAN.Execute(ctx, dto.ValidateBBANRequest{BBAN: req.BBAN, CountryCode: req.CountryCode})
	if err != nil {
		return nil, h.internal(ctx, "ValidateBBAN", err)
	}
	return toValidationResponse(resp), nil
}

func (h *Handler) ValidateBIC(ctx context.Context, req *ValidateBICRequest) (*ValidationResponse, error) {
	resp, err := h.uc.ValidateBIC.Execute(ctx, dto.ValidateBICRequest{BIC: req.BIC})
	if err != nil {
		return nil, h.internal(ctx, "ValidateBIC", err)
	}
	return toValidationResponse(resp), nil
}

func (h *Handler) ExtractBIC(ctx context.Context, req *ValidateBICRequest) (*ExtractBICResponse, error) {
	resp, err := h.uc.ExtractBIC.Execute(ctx, dto.ValidateBICRequest{BIC: req.BIC})
	if err != nil {
		return nil, h.internal(ctx, "ExtractBIC", err)
	}
	out := &ExtractBICResponse{Input: resp.Input, Valid: resp.Valid, Reason: resp.Reason}
	if d := resp.Details; d != nil {
		out.Details = &BICDetailsMsg{
			BankCode:     d.BankCode,
			CountryCode:  d.CountryCode,
			CountryName:  d.CountryName,
			LocationCode: d.LocationCode,
			BranchCode:   d.BranchCode,
			TestBIC:      d.TestBIC,
		}
	}
	return out, nil
}

func (h *Handler) ListCountries(ctx context.Context, req *ListCountriesRequest) (*ListCountriesResponse, error) {
	resp, err := h.uc.ListCountries.Execute(ctx, dto.ListCountriesRequest{IBANOnly: req.IBANOnly, SEPAOnly: req.SEPAOnly})
	if err != nil {
		return nil, h.internal(ctx, "ListCountries", err)
	}
	out := &ListCountriesResponse{
		Countries: make([]*CountryMsg, 0, len(resp.Countries)),
		Total:     int32(resp.Total),
	}
	for _, c := range resp.Countries {
		out.Countries = append(out.Countries, toCountryMsg(c))
	}
	return out, nil
}

func (h *Handler) GetCountry(ctx context.Context, req *GetCountryRequest) (*GetCountryResponse, error) {
	if req.Code == "" {
		return nil, status.Error(codes.InvalidArgument, "code is required")
	}
	resp, err := h.uc.GetCountry.Execute(ctx, dto.GetCountryRequest{Code: req.Code})
	if errors.Is(err, usecase.ErrCountryNotFound) {
		return nil, status.Errorf(codes.NotFound, "country %q not found", req.Code)
	}
	if err != nil {
		return nil, h.internal(ctx, "GetCountry", err)
	}
	return &GetCountryResponse{Country: toCountryMsg(resp)}, nil
}

func (h *Handler) internal(ctx context.Context, method string, err error) error {
	h.logger.ErrorContext(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, "internal error")
}

func toValidationResponse(r dto.ValidationResponse) *ValidationResponse {
	return &ValidationResponse{Valid: r.Valid, Reason: r.Reason, CountryCode: r.CountryCode}
}

func toCountryMsg(c dto.CountryResponse) *CountryMsg {
	return &CountryMsg{
		Code:         c.Code,
		Name:         c.Name,
		IBANLength:   int32(c.IBANLength),
		BBANPattern:  c.BBANPattern,
		IBANRegistry: c.IBANRegistry,
		SEPA:         c.SEPA,
	}
}
