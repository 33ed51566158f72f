// Package main is the AWS Lambda entry point of the translator.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/developia-II/moderated-translator/internal/apigw"
	"github.com/developia-II/moderated-translator/internal/config"
	"github.com/developia-II/moderated-translator/internal/logger"
	"github.com/developia-II/moderated-translator/internal/metrics"
	"github.com/developia-II/moderated-translator/internal/services"
)

func main() {
	cfg := config.Load()
	l := logger.New(os.Stderr, cfg.Log)
	m := metrics.New()

	ai := services.NewOpenAIService(cfg.OpenAI, nil, l, m)
	h := apigw.NewHandler(services.NewTranslator(ai, l, m), l)
	w := &warmer{log: l, invoker: lambdaInvoker{function: os.Getenv("AWS_LAMBDA_FUNCTION_NAME")}}

	lambda.Start(func(ctx context.Context, event json.RawMessage) (interface{}, error) {
		return handleRequest(ctx, event, h, w)
	})
}

func handleRequest(ctx context.Context, event json.RawMessage, h *apigw.Handler, w *warmer) (interface{}, error) {
	// Warmup detection comes before any other processing.
	if warmup, ok := IsWarmupEvent(event); ok {
		return w.Handle(ctx, warmup)
	}

	var req events.APIGatewayV2HTTPRequest
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, err
	}
	return h.Handle(ctx, req)
}
