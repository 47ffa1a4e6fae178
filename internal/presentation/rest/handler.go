package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ktp-forked-repos/ibantools/internal/application/dto"
	"github.com/ktp-forked-repos/ibantools/internal/application/usecase"
)

// maxBodyBytes caps request bodies; identifiers are tiny.
const maxBodyBytes = 64 << 10

// Handler serves the identifier use cases as JSON over HTTP.
type Handler struct {
	uc     usecase.Set
	logger *slog.Logger
}

// NewHandler creates a new REST Handler.
func NewHandler(uc usecase.Set, logger *slog.Logger) *Handler {
	return &Handler{uc: uc, logger: logger}
}

// RegisterRoutes registers the API routes on the provided mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/iban/validate", post(h, h.uc.ValidateIBAN.Execute))
	mux.HandleFunc("POST /v1/iban/extract", post(h, h.uc.ExtractIBAN.Execute))
	mux.HandleFunc("POST /v1/iban/compose", post(h, h.uc.ComposeIBAN.Execute))
	mux.HandleFunc("POST /v1/iban/format", post(h, h.uc.FormatIBAN.Execute))
	mux.HandleFunc("POST /v1/bban/validate", post(h, h.uc.ValidateBBAN.Execute))
	mux.HandleFunc("POST /v1/bic/validate", post(h, h.uc.ValidateBIC.Execute))
	mux.HandleFunc("POST /v1/bic/extract", post(h, h.uc.ExtractBIC.Execute))
	mux.HandleFunc("GET /v1/countries", h.listCountries)
	mux.HandleFunc("GET /v1/countries/{code}", h.getCountry)
}

// post decodes a JSON body into Req, runs the use case and encodes Resp.
func post[Req any, Resp any](h *Handler, execute func(context.Context, Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp, err := execute(r.Context(), req)
		if err != nil {
			h.internal(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *Handler) listCountries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var req dto.ListCountriesRequest
	var err error
	if req.IBANOnly, err = queryBool(q.Get("iban_only")); err != nil {
		writeError(w, http.StatusBadRequest, "iban_only: "+err.Error())
		return
	}
	if req.SEPAOnly, err = queryBool(q.Get("sepa_only")); err != nil {
		writeError(w, http.StatusBadRequest, "sepa_only: "+err.Error())
		return
	}

	resp, err := h.uc.ListCountries.Execute(r.Context(), req)
	if err != nil {
		h.internal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getCountry(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	resp, err := h.uc.GetCountry.Execute(r.Context(), dto.GetCountryRequest{Code: code})
	if errors.Is(err, usecase.ErrCountryNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("country %q not found", code))
		return
	}
	if err != nil {
		h.internal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) internal(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("invalid JSON body: trailing data")
	}
	return nil
}

func queryBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
