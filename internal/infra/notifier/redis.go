package notifier

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Canal do feed de mudanças de fidelidade. Assinantes (telas, cache)
// usam o evento para recarregar a visão; o engine nunca depende dele.
const LoyaltyChannel = "loyalty:changes"

type LoyaltyEvent struct {
	BarbershopID uint   `json:"barbershop_id"`
	Entity       string `json:"entity"`
	ClientID     uint   `json:"client_id,omitempty"`
	At           string `json:"at"`
}

type RedisNotifier struct {
	rdb *redis.Client
}

func NewRedisNotifier(addr string) *RedisNotifier {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis indisponível (%v), feed de fidelidade desligado", err)
		return nil
	}

	return &RedisNotifier{rdb: rdb}
}

// LoyaltyChanged publica no feed, best-effort: erro só vira log.
func (n *RedisNotifier) LoyaltyChanged(
	ctx context.Context,
	barbershopID uint,
	entity string,
	clientID uint,
) {
	if n == nil {
		return
	}

	ev := LoyaltyEvent{
		BarbershopID: barbershopID,
		Entity:       entity,
		ClientID:     clientID,
		At:           time.Now().UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	if err := n.rdb.Publish(ctx, LoyaltyChannel, payload).Err(); err != nil {
		log.Printf("loyalty notify: %v", err)
	}
}
