package cart

import (
	"context"
	"testing"
	"time"

	"github.com/ers220/component-compass/pkg/auth/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Sessions: session.NewManager(session.NewMemoryStore(), time.Minute),
	})
	require.NoError(t, err)
	return svc
}

func TestSaveAndFetch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	componentID := int64(4)
	items := []Item{
		{ComponentID: &componentID, Name: "LM741 Op-Amp", Store: "Communica", Price: decimal.NewFromFloat(12.50)},
		{Name: "Breadboard 400pt", Store: "Micro Robotics", Price: decimal.NewFromFloat(45.99)},
	}

	require.NoError(t, svc.Save(ctx, "session-1", items))

	got, err := svc.Fetch(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "LM741 Op-Amp", got[0].Name)
	require.NotNil(t, got[0].ComponentID)
	require.Equal(t, int64(4), *got[0].ComponentID)
	require.True(t, got[1].Price.Equal(decimal.NewFromFloat(45.99)))
}

func TestFetchEmptySession(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Fetch(context.Background(), "session-none")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSaveOverwrites(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "session-1", []Item{{Name: "A", Store: "S", Price: decimal.NewFromInt(1)}}))
	require.NoError(t, svc.Save(ctx, "session-1", []Item{{Name: "B", Store: "S", Price: decimal.NewFromInt(2)}}))

	got, err := svc.Fetch(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "B", got[0].Name)
}

func TestClear(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "session-1", []Item{{Name: "A", Store: "S", Price: decimal.NewFromInt(1)}}))
	require.NoError(t, svc.Clear(ctx, "session-1"))

	got, err := svc.Fetch(ctx, "session-1")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSaveNilBecomesEmpty(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "session-1", nil))
	got, err := svc.Fetch(ctx, "session-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}
