package convert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewBatch_MissingDependencies(t *testing.T) {
	c, _ := newTestConverter(t)

	_, err := NewBatch(nil, NewNodeIndex())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingConfig)

	_, err = NewBatch(c, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingConfig)
}

func TestBatch_ConvertsAllRecords(t *testing.T) {
	c, g := newTestConverter(t)
	index := NewNodeIndex()

	batch, err := NewBatch(c, index,
		WithBatchWorkers(4),
		WithBatchQueueSize(64),
		WithBatchLogger(quietLogger()),
	)
	require.NoError(t, err)
	require.NoError(t, batch.Start(context.Background()))

	const records = 20
	for i := 0; i < records; i++ {
		rec := BomRecord{
			Master: MasterRecord{Code: fmt.Sprintf("3011C08000020%02dY", i%10)},
			Components: []ComponentRecord{
				{Code: fmt.Sprintf("20101-%03d", i), Sequence: 10, Quantity: 1},
			},
		}
		require.NoError(t, batch.Submit(rec))
	}
	require.NoError(t, batch.Stop(5*time.Second))

	stats := batch.Stats()
	assert.Equal(t, int64(records), stats.Submitted)
	assert.Equal(t, int64(records), stats.Processed)
	assert.Equal(t, int64(0), stats.Failed)

	// 10 distinct masters, 20 distinct components, 20 bom relation nodes
	assert.Equal(t, 50, g.Len())
	for i := 0; i < records; i++ {
		assert.True(t, g.Contains(vocabulary.ItemIRI(fmt.Sprintf("20101-%03d", i))))
	}
}

func TestBatch_RecordsFailuresWithoutStopping(t *testing.T) {
	c, g := newTestConverter(t)
	index := NewNodeIndex()

	batch, err := NewBatch(c, index, WithBatchWorkers(2), WithBatchLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, batch.Start(context.Background()))

	require.NoError(t, batch.Submit(BomRecord{Master: MasterRecord{Code: ""}}))
	require.NoError(t, batch.Submit(BomRecord{Master: MasterRecord{Code: cylinderCode}}))
	require.NoError(t, batch.Stop(5*time.Second))

	stats := batch.Stats()
	// Every dequeued record counts as processed; failures are counted on top.
	assert.Equal(t, int64(2), stats.Processed)
	assert.Equal(t, int64(1), stats.Failed)
	assert.True(t, g.Contains(vocabulary.ItemIRI(cylinderCode)))
}

func TestBatch_SharedComponentsConvergeToOneNode(t *testing.T) {
	c, g := newTestConverter(t)
	index := NewNodeIndex()

	batch, err := NewBatch(c, index, WithBatchWorkers(8), WithBatchLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, batch.Start(context.Background()))

	// Every record shares one component; concurrent conversion must still
	// produce a single component node.
	for i := 0; i < 16; i++ {
		rec := BomRecord{
			Master: MasterRecord{Code: fmt.Sprintf("3011C0800002%02dYB", i)},
			Components: []ComponentRecord{
				{Code: "20101-SHARED", Sequence: 10, Quantity: 1},
			},
		}
		require.NoError(t, batch.Submit(rec))
	}
	require.NoError(t, batch.Stop(5*time.Second))

	sharedID := vocabulary.ItemIRI("20101-SHARED")
	node, ok := g.Node(sharedID)
	require.True(t, ok)
	assert.Len(t, node.RefProperty(vocabulary.PropIsUsedIn), 16)

	// 16 masters + 1 shared component + 16 bom nodes
	assert.Equal(t, 33, g.Len())
}
