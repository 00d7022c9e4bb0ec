// auditlog tails the mutation event topic and writes one audit line per
// visit/payment event. It is a separate process so the API server never
// blocks on consumption.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"carwash-service/internal/config"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	cfg := config.Load()

	reader := config.NewKafkaReader(cfg.KafkaBrokers, cfg.KafkaTopic, "audit-log")
	defer reader.Close()

	logger.Info().Msgf("Audit log consuming topic %s", cfg.KafkaTopic)

	for {
		msg, err := reader.ReadMessage(context.Background())
		if err != nil {
			logger.Error().Err(err).Msg("Error reading message")
			continue
		}
		logEvent(msg)
	}
}

// logEvent splits keys of the form "<entity>-<action>-<id>".
func logEvent(msg kafka.Message) {
	key := string(msg.Key)
	parts := strings.SplitN(key, "-", 3)
	if len(parts) != 3 {
		logger.Warn().Str("key", key).Msg("Unrecognized event key")
		return
	}

	logger.Info().
		Str("entity", parts[0]).
		Str("action", parts[1]).
		Str("id", parts[2]).
		RawJSON("payload", msg.Value).
		Msg("Mutation recorded")
}
