package loader

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/sells-group/litigation-cli/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCache_MemoizesByContent(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	c := NewCache(0, Options{})

	first, err := c.Get(context.Background(), path)
	require.NoError(t, err)
	second, err := c.Get(context.Background(), path)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())
}

func TestCache_ReloadsOnChange(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	c := NewCache(0, Options{})

	first, err := c.Get(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 2, first.Len())

	require.NoError(t, os.WriteFile(path, []byte(sampleCSV+"Third v. Co,Co,Dismissed,,2020,\n"), 0o644))

	second, err := c.Get(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, second.Len())
	assert.Equal(t, 2, first.Len(), "earlier table is untouched")
	assert.Equal(t, 1, c.Len(), "superseded table is evicted")
}

func TestCache_KeepsOneTablePerPath(t *testing.T) {
	a := writeCSV(t, sampleCSV)
	b := writeCSV(t, sampleCSV)
	c := NewCache(0, Options{})

	ta, err := c.Get(context.Background(), a)
	require.NoError(t, err)
	tb, err := c.Get(context.Background(), b)
	require.NoError(t, err)

	assert.NotSame(t, ta, tb)
	assert.Equal(t, 2, c.Len())
}

func TestCache_CachesTheBytesItParsed(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	c := NewCache(0, Options{})

	var once sync.Once
	c.parse = func(ctx context.Context, p string, content []byte, opts Options) (*model.Table, error) {
		// The file changes while the first load is parsing.
		once.Do(func() {
			require.NoError(t, os.WriteFile(p, []byte(sampleCSV+"Third v. Co,Co,Dismissed,,2020,\n"), 0o644))
		})
		return Parse(ctx, p, content, opts)
	}

	first, err := c.Get(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Len())

	second, err := c.Get(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, second.Len())
}

func TestCache_CancelledCallerDoesNotFailOthers(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	c := NewCache(0, Options{})

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	c.parse = func(ctx context.Context, p string, content []byte, opts Options) (*model.Table, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Parse(ctx, p, content, opts)
	}

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := c.Get(leaderCtx, path)
		leaderErr <- err
	}()
	<-started

	type result struct {
		tbl *model.Table
		err error
	}
	follower := make(chan result, 1)
	go func() {
		tbl, err := c.Get(context.Background(), path)
		follower <- result{tbl, err}
	}()
	time.Sleep(20 * time.Millisecond) // follower joins the in-flight load

	cancel()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)
	close(release)

	res := <-follower
	require.NoError(t, res.err)
	assert.Equal(t, 2, res.tbl.Len())
	assert.Equal(t, 1, c.Len())
}

func TestCache_ConcurrentGet(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	c := NewCache(0, Options{})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tbl, err := c.Get(context.Background(), path)
			assert.NoError(t, err)
			assert.Equal(t, 2, tbl.Len())
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, c.Len())
}

func TestCache_ErrorNotCached(t *testing.T) {
	path := writeCSV(t, "a,b\n1,2,3\n")
	c := NewCache(0, Options{})

	_, err := c.Get(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestCache_Flush(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	c := NewCache(0, Options{})

	_, err := c.Get(context.Background(), path)
	require.NoError(t, err)
	c.Flush()
	assert.Equal(t, 0, c.Len())
}
