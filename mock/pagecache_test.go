package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pagecache"
	"github.com/fwojciec/pagecache/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCache_Put(t *testing.T) {
	t.Parallel()

	t.Run("delegates to PutFn", func(t *testing.T) {
		t.Parallel()

		var got []pagecache.PageInput
		c := &mock.PageCache{
			PutFn: func(_ context.Context, pages []pagecache.PageInput) error {
				got = pages
				return nil
			},
		}

		in := []pagecache.PageInput{{URL: "https://a.com/"}}
		err := c.Put(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("returns error from PutFn", func(t *testing.T) {
		t.Parallel()

		expected := errors.New("disk full")
		c := &mock.PageCache{
			PutFn: func(_ context.Context, _ []pagecache.PageInput) error {
				return expected
			},
		}

		err := c.Put(context.Background(), nil)

		assert.ErrorIs(t, err, expected)
	})
}
