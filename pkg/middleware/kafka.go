package middleware

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/jailtonjunior94/ctxlog/pkg/ctxlog"
)

// KafkaHandlerFunc processes one consumed message.
type KafkaHandlerFunc func(ctx context.Context, msg kafka.Message) error

// KafkaScope wraps a message handler so every message is processed inside
// its own branched scope. The named variables are seeded from same-named
// message headers when present; headers without a matching declared
// variable are a configuration error and fail the message.
//
// Branching (rather than rooting a fresh scope) lets consumer-wide bindings
// made by the caller, such as a consumer group label, flow into every
// message's records.
func KafkaScope(logger *ctxlog.Logger, vars ...string) func(KafkaHandlerFunc) KafkaHandlerFunc {
	return func(next KafkaHandlerFunc) KafkaHandlerFunc {
		return func(ctx context.Context, msg kafka.Message) error {
			ctx = ctxlog.Branch(ctx)

			for _, name := range vars {
				value, ok := headerValue(msg, name)
				if !ok {
					continue
				}
				if err := logger.Set(ctx, name, value); err != nil {
					return err
				}
			}
			return next(ctx, msg)
		}
	}
}

func headerValue(msg kafka.Message, key string) (string, bool) {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value), true
		}
	}
	return "", false
}
