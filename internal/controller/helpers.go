package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	domainErrors "github.com/mcubank/transfers/internal/domain/errors"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: err.Error()}

	var verrs *domainErrors.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Code = "validation_error"
		resp.Errors = verrs.Messages
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrInsufficientFunds):
		resp.Code = "insufficient_funds"
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	case errors.Is(err, domainErrors.ErrSettlementFailed):
		resp.Code = "settlement_failed"
		writeJSON(w, http.StatusBadGateway, resp)
	case errors.Is(err, domainErrors.ErrClearingUnavailable):
		resp.Code = "clearing_unavailable"
		writeJSON(w, http.StatusServiceUnavailable, resp)
	case errors.Is(err, domainErrors.ErrInvalidInput):
		resp.Code = "invalid_input"
		writeJSON(w, http.StatusBadRequest, resp)
	default:
		var domainErr *domainErrors.DomainError
		if errors.As(err, &domainErr) {
			resp.Code = domainErr.Code
			writeJSON(w, http.StatusUnprocessableEntity, resp)
			return
		}
		log.Error().Err(err).Msg("unhandled error in handler")
		resp.Code = "internal_error"
		resp.Error = "internal server error"
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}

func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domainErrors.NewDomainError("invalid_body", "invalid JSON: "+err.Error(), domainErrors.ErrInvalidInput)
	}
	if err := validate.Struct(dst); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
			return domainErrors.NewDomainError("invalid_body", ve[0].Field()+" "+ve[0].Tag()+" validation failed", domainErrors.ErrInvalidInput)
		}
		return domainErrors.NewDomainError("invalid_body", err.Error(), domainErrors.ErrInvalidInput)
	}
	return nil
}
