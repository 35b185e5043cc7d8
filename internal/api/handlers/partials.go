package handlers

import (
	"errors"
	"naiyuan-admin/internal/api/dto"
	"naiyuan-admin/internal/ports"
	"net/http"

	"go.uber.org/zap"
)

// PendingPayments serves the sidebar badge poll. Errors other than an
// expired session report zero.
func (b *Base) PendingPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := b.client(r).PendingPayments(r.Context())
	if errors.Is(err, ports.ErrUnauthorized) {
		b.writeError(w, r, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		b.Logger.Debug("pending payments poll failed", zap.Error(err))
	}
	b.writeJSON(w, r, http.StatusOK, dto.PendingPaymentsResponse{Count: len(payments)})
}
