package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavActive(t *testing.T) {
	assert.True(t, NavActive("/", "/"))
	assert.False(t, NavActive("/", "/bills"))
	assert.True(t, NavActive("/bills", "/bills"))
	assert.True(t, NavActive("/master-shipments", "/master-shipments/ms-1/status"))
	assert.False(t, NavActive("/shipments", "/shipment-requests"))
	assert.False(t, NavActive("/shipments", "/master-shipments"))
}

func TestNavHasSingleBadgeEntry(t *testing.T) {
	n := 0
	for _, item := range Nav {
		if item.Badge {
			n++
			assert.Equal(t, "/bills", item.Href)
		}
	}
	assert.Equal(t, 1, n)
}
