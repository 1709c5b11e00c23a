package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashID_KnownVectors(t *testing.T) {
	// Keccak-256, not SHA3-256: the ledger hashes external identifiers the
	// same way the chain-side collaborator does.
	assert.Equal(t,
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		HashID("").String(),
	)
	assert.Equal(t,
		"4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
		HashID("abc").String(),
	)
}

func TestHashID_Deterministic(t *testing.T) {
	assert.Equal(t, HashID("EVT-2026-001"), HashID("EVT-2026-001"))
	assert.NotEqual(t, HashID("EVT-2026-001"), HashID("EVT-2026-002"))
}

func TestHash_TextRoundTrip(t *testing.T) {
	h := HashID("customer-42")

	text, err := h.MarshalText()
	require.NoError(t, err)

	var back Hash
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, h, back)
}

func TestHash_UnmarshalText_Invalid(t *testing.T) {
	var h Hash
	assert.Error(t, h.UnmarshalText([]byte("not-hex")))
	assert.Error(t, h.UnmarshalText([]byte("abcdef"))) // too short
}

func TestStore_Transitions(t *testing.T) {
	s := NewStore("ledger", "owner")
	assert.Equal(t, StoreStatusCreated, s.Status)
	assert.True(t, s.CanOpen())
	assert.False(t, s.CanSuspend())
	assert.False(t, s.IsOpen())

	s.Status = StoreStatusOpen
	assert.False(t, s.CanOpen())
	assert.True(t, s.CanSuspend())
	assert.True(t, s.CanClose())
	assert.True(t, s.IsOpen())

	s.Status = StoreStatusSuspended
	assert.True(t, s.CanOpen())
	assert.False(t, s.CanSuspend())
	assert.True(t, s.CanClose())

	s.Status = StoreStatusClosed
	assert.False(t, s.CanOpen())
	assert.False(t, s.CanSuspend())
	assert.False(t, s.CanClose())
}

func TestEvent_Transitions(t *testing.T) {
	e := &Event{Status: EventStatusCreated}
	assert.True(t, e.CanStartSales())
	assert.True(t, e.CanCancel())
	assert.False(t, e.CanSuspendSales())
	assert.False(t, e.CanEndSales())
	assert.False(t, e.SalesOpen())

	e.Status = EventStatusSalesStarted
	assert.True(t, e.SalesOpen())
	assert.True(t, e.CanSuspendSales())
	assert.True(t, e.CanEndSales())
	assert.True(t, e.CanCancel())
	assert.False(t, e.CanStartSales())

	e.Status = EventStatusSalesSuspended
	assert.True(t, e.CanStartSales())
	assert.True(t, e.CanEndSales())
	assert.True(t, e.CanCancel())
	assert.False(t, e.SalesOpen())

	e.Status = EventStatusSalesFinished
	assert.True(t, e.CanComplete())
	assert.True(t, e.CanCancel())
	assert.False(t, e.CanEndSales())

	e.Status = EventStatusCompleted
	assert.True(t, e.CanSettle())
	assert.False(t, e.CanCancel())
	assert.False(t, e.BooksOpen())

	e.Status = EventStatusSettled
	assert.False(t, e.CanSettle())
	assert.False(t, e.CanCancel())
	assert.False(t, e.BooksOpen())

	e.Status = EventStatusCancelled
	assert.False(t, e.CanCancel())
	assert.True(t, e.BooksOpen())
}

func TestPurchase_Transitions(t *testing.T) {
	p := &Purchase{Status: PurchaseStatusCompleted}
	assert.True(t, p.CanCancel())
	assert.True(t, p.CanCheckIn())
	assert.False(t, p.CanRefund())
	assert.False(t, p.IsTerminal())

	p.Status = PurchaseStatusCancelled
	assert.True(t, p.CanRefund())
	assert.False(t, p.CanCancel())
	assert.False(t, p.CanCheckIn())
	assert.False(t, p.IsTerminal())

	p.Status = PurchaseStatusRefunded
	assert.False(t, p.CanRefund())
	assert.True(t, p.IsTerminal())

	p.Status = PurchaseStatusCheckedIn
	assert.False(t, p.CanCancel())
	assert.True(t, p.IsTerminal())
}

func TestAddress_IsZero(t *testing.T) {
	assert.True(t, Address("").IsZero())
	assert.False(t, Address("0xabc").IsZero())
}
