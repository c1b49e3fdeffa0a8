package dispatch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenList(n int) []string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%04d", i)
	}
	return tokens
}

func TestDispatchPartitionsIntoBatches(t *testing.T) {
	messenger := &fakeMessenger{}
	dispatcher := NewBatchDispatcher(messenger)

	report := dispatcher.Dispatch(context.Background(), tokenList(1200), payload{Title: "t", Body: "b"})

	require.Len(t, messenger.multicast, 3)
	assert.Len(t, messenger.multicast[0].Tokens, 500)
	assert.Len(t, messenger.multicast[1].Tokens, 500)
	assert.Len(t, messenger.multicast[2].Tokens, 200)

	assert.Equal(t, 3, report.Batches)
	assert.Equal(t, 1200, report.Attempted)
	assert.Equal(t, 1200, report.Succeeded)
	assert.Equal(t, 0, report.Failed)

	// batching preserves token order
	assert.Equal(t, "token-0000", messenger.multicast[0].Tokens[0])
	assert.Equal(t, "token-0500", messenger.multicast[1].Tokens[0])
	assert.Equal(t, "token-1199", messenger.multicast[2].Tokens[199])
}

func TestDispatchIsolatesBatchFailures(t *testing.T) {
	messenger := &fakeMessenger{
		batchErr: map[int]error{1: errors.New("quota exceeded")},
	}
	dispatcher := NewBatchDispatcher(messenger)

	report := dispatcher.Dispatch(context.Background(), tokenList(1200), payload{Title: "t", Body: "b"})

	// batch 2 failed, batches 1 and 3 were still attempted
	require.Len(t, messenger.multicast, 3)
	assert.Equal(t, 1200, report.Attempted)
	assert.Equal(t, 700, report.Succeeded)
	assert.Equal(t, 500, report.Failed)
}

func TestDispatchSmallList(t *testing.T) {
	messenger := &fakeMessenger{}
	dispatcher := NewBatchDispatcher(messenger)

	report := dispatcher.Dispatch(context.Background(), []string{"only-one"}, payload{})

	require.Len(t, messenger.multicast, 1)
	assert.Equal(t, 1, report.Batches)
	assert.Equal(t, 1, report.Attempted)
}

func TestDispatchEmptyList(t *testing.T) {
	messenger := &fakeMessenger{}
	dispatcher := NewBatchDispatcher(messenger)

	report := dispatcher.Dispatch(context.Background(), nil, payload{})

	assert.Empty(t, messenger.multicast)
	assert.Equal(t, DispatchReport{}, report)
}
