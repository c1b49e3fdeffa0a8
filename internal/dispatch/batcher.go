package dispatch

import (
	"context"
	"log"

	"firebase.google.com/go/v4/messaging"
)

// maxBatchSize is the FCM multicast token limit per call.
const maxBatchSize = 500

// Messenger is the outbound delivery port, satisfied by *messaging.Client.
type Messenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// DispatchReport aggregates the outcome of a batched broadcast. Attempted
// counts every token handed to the provider, whether or not its batch
// succeeded.
type DispatchReport struct {
	Batches   int
	Attempted int
	Succeeded int
	Failed    int
}

// BatchDispatcher fans a token list out to the provider in batches of at
// most maxBatchSize.
type BatchDispatcher struct {
	messenger Messenger
}

func NewBatchDispatcher(messenger Messenger) *BatchDispatcher {
	return &BatchDispatcher{messenger: messenger}
}

// Dispatch sends the payload to every token. Batches are independent: a
// provider error on one batch is logged and the remaining batches are still
// attempted.
func (d *BatchDispatcher) Dispatch(ctx context.Context, tokens []string, p payload) DispatchReport {
	var report DispatchReport

	for start := 0; start < len(tokens); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		report.Batches++
		report.Attempted += len(batch)

		resp, err := d.messenger.SendEachForMulticast(ctx, buildMulticastMessage(p, batch))
		if err != nil {
			log.Printf("multicast batch %d failed (%d tokens): %v", report.Batches, len(batch), err)
			report.Failed += len(batch)
			continue
		}

		report.Succeeded += resp.SuccessCount
		report.Failed += resp.FailureCount
		if resp.FailureCount > 0 {
			log.Printf("multicast batch %d: %d sent, %d failed", report.Batches, resp.SuccessCount, resp.FailureCount)
		}
	}

	return report
}
