package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

const (
	WarmupSource = "warmup"

	// MaxWarmupConcurrency bounds how many copies a single ping may start.
	MaxWarmupConcurrency = 10

	// WarmupDelay keeps this instance busy so the copies land elsewhere.
	WarmupDelay = 75 * time.Millisecond
)

// WarmupEvent is the scheduled ping {"source":"warmup","concurrency":N}.
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

type warmupResult struct {
	StatusCode int            `json:"statusCode"`
	Body       WarmupResponse `json:"body"`
}

// IsWarmupEvent reports whether event is a warmup ping rather than an
// API Gateway request. Concurrency is clamped to [0, MaxWarmupConcurrency].
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var raw struct {
		Source      string `json:"source"`
		Concurrency any    `json:"concurrency"`
	}
	if err := json.Unmarshal(event, &raw); err != nil || raw.Source != WarmupSource {
		return nil, false
	}

	warmup := &WarmupEvent{Source: WarmupSource}
	if n, ok := raw.Concurrency.(float64); ok && n > 0 {
		warmup.Concurrency = int(min(n, MaxWarmupConcurrency))
	}
	return warmup, true
}

type invoker interface {
	InvokeAsync(ctx context.Context, count int, payload []byte) error
}

type warmer struct {
	log     *log.Logger
	invoker invoker
	delay   time.Duration
}

func (w *warmer) Handle(ctx context.Context, warmup *WarmupEvent) (interface{}, error) {
	res := warmupResult{
		StatusCode: 200,
		Body:       WarmupResponse{Status: "warm", InstancesWarmed: 1},
	}

	if n := min(warmup.Concurrency, MaxWarmupConcurrency); n > 0 {
		// Copies are pinged with concurrency 0 so they do not fan out again.
		payload, err := json.Marshal(WarmupEvent{Source: WarmupSource})
		if err != nil {
			return nil, err
		}
		if err := w.invoker.InvokeAsync(ctx, n, payload); err != nil {
			w.log.Warn("warmup self-invoke failed", "concurrency", n, "err", err)
		} else {
			res.Body.InstancesWarmed += n
		}
	}

	delay := w.delay
	if delay == 0 {
		delay = WarmupDelay
	}
	time.Sleep(delay)

	return res, nil
}

// lambdaInvoker sends asynchronous Event invocations to the named function.
type lambdaInvoker struct {
	function string
}

func (li lambdaInvoker) InvokeAsync(ctx context.Context, count int, payload []byte) error {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	client := lambdasdk.NewFromConfig(cfg)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxWarmupConcurrency)
	for n := 0; n < count; n++ {
		g.Go(func() error {
			_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(li.function),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			return err
		})
	}
	return g.Wait()
}
