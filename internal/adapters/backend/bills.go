package backend

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/platform/obs"
	"net/http"
)

func (c *Client) Bills(ctx context.Context, status, search string) (_ []domain.Bill, err error) {
	defer obs.Time(ctx, "backend.Bills")(&err)

	var out []domain.Bill
	path := "/admin/bills" + query("status", status, "search", search)
	err = c.call(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) CreateBill(ctx context.Context, in domain.NewBill) (_ *domain.Bill, err error) {
	defer obs.Time(ctx, "backend.CreateBill")(&err)

	var out domain.Bill
	if err := c.call(ctx, http.MethodPost, "/admin/bills", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PendingPayments lists uploaded payments awaiting verification.
func (c *Client) PendingPayments(ctx context.Context) (_ []domain.Payment, err error) {
	defer obs.Time(ctx, "backend.PendingPayments")(&err)

	var out []domain.Payment
	err = c.call(ctx, http.MethodGet, "/admin/bills/pending-payments", nil, &out)
	return out, err
}

func (c *Client) VerifyPayment(ctx context.Context, paymentID string, v domain.PaymentVerification) (err error) {
	defer obs.Time(ctx, "backend.VerifyPayment")(&err)
	return c.call(ctx, http.MethodPut, "/admin/bills/payments/"+escape(paymentID)+"/verify", v, nil)
}
