package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketfront/internal/catalog"
	"ticketfront/internal/clock"
)

func newService(t *testing.T, now time.Time) Service {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return New(cat, clock.NewFixed(now))
}

func TestListUsesClockDay(t *testing.T) {
	svc := newService(t, time.Date(2025, time.June, 8, 18, 0, 0, 0, time.UTC))

	got, err := svc.List(context.Background(), catalog.Params{DateFilter: catalog.ThisWeekend})
	require.NoError(t, err)

	var ids []string
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"sf-symphony", "rolling-stones", "lv-comedy"}, ids)
}

func TestDetail(t *testing.T) {
	svc := newService(t, time.Date(2025, time.June, 8, 9, 0, 0, 0, time.UTC))

	d, err := svc.Detail(context.Background(), "rolling-stones")
	require.NoError(t, err)

	assert.Equal(t, "new-york", d.City.ID)
	require.Len(t, d.Tiers, 4)
	assert.Equal(t, 350.0, d.Tiers[0].Price)
	assert.Len(t, d.Related, catalog.DefaultRelatedLimit)
	assert.True(t, d.HappeningSoon)

	later := newService(t, time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC))
	d, err = later.Detail(context.Background(), "rolling-stones")
	require.NoError(t, err)
	assert.False(t, d.HappeningSoon)
}

func TestDetailNotFound(t *testing.T) {
	svc := newService(t, time.Now())

	_, err := svc.Detail(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrEventNotFound))
}

func TestFeaturedAndCategories(t *testing.T) {
	svc := newService(t, time.Now())

	featured, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, 2)

	counts, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, counts, len(catalog.Categories))
}

func TestCancelledContext(t *testing.T) {
	svc := newService(t, time.Now())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.List(ctx, catalog.Params{})
	assert.ErrorIs(t, err, context.Canceled)
}
