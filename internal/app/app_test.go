package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"ControleGastos/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestClose_ReverseOrderAndErrors(t *testing.T) {
	var order []string
	boom := errors.New("boom")
	a := &App{closers: []io.Closer{
		closerFunc(func() error { order = append(order, "store"); return nil }),
		closerFunc(func() error { order = append(order, "redis"); return boom }),
	}}

	err := a.Close(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"redis", "store"}, order)
}

func TestClose_StopsWaitingWhenContextEnds(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	a := &App{closers: []io.Closer{
		closerFunc(func() error { <-release; return nil }),
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := a.Close(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestClose_ReleasesStore(t *testing.T) {
	store, err := repo.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	a := &App{store: store, closers: []io.Closer{store}}

	require.NoError(t, a.Close(context.Background()))
	assert.Error(t, store.Ping(context.Background()))
}
