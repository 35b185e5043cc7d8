package backend

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/platform/obs"
	"net/http"
)

func (c *Client) ShippingRates(ctx context.Context) (_ []domain.ShippingRate, err error) {
	defer obs.Time(ctx, "backend.ShippingRates")(&err)

	var out []domain.ShippingRate
	err = c.call(ctx, http.MethodGet, "/admin/rates", nil, &out)
	return out, err
}

func (c *Client) CreateShippingRate(ctx context.Context, in domain.NewShippingRate) (err error) {
	defer obs.Time(ctx, "backend.CreateShippingRate")(&err)
	return c.call(ctx, http.MethodPost, "/admin/rates", in, nil)
}

func (c *Client) UpdateShippingRate(ctx context.Context, id string, upd domain.ShippingRateUpdate) (err error) {
	defer obs.Time(ctx, "backend.UpdateShippingRate")(&err)
	return c.call(ctx, http.MethodPut, "/admin/rates/"+escape(id), upd, nil)
}

func (c *Client) DeleteShippingRate(ctx context.Context, id string) (err error) {
	defer obs.Time(ctx, "backend.DeleteShippingRate")(&err)
	return c.call(ctx, http.MethodDelete, "/admin/rates/"+escape(id), nil, nil)
}

func (c *Client) ExchangeRates(ctx context.Context) (_ []domain.ExchangeRate, err error) {
	defer obs.Time(ctx, "backend.ExchangeRates")(&err)

	var out []domain.ExchangeRate
	err = c.call(ctx, http.MethodGet, "/admin/exchange-rates", nil, &out)
	return out, err
}

func (c *Client) CreateExchangeRate(ctx context.Context, in domain.NewExchangeRate) (err error) {
	defer obs.Time(ctx, "backend.CreateExchangeRate")(&err)
	return c.call(ctx, http.MethodPost, "/admin/exchange-rates", in, nil)
}
