package ratelimit

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/mussol-barber/booking-api/internal/config"
)

// Limiter conta agendamentos públicos por chave (telefone do cliente)
// numa janela fixa, via INCR+EXPIRE no Redis. Sem Redis configurado, ou
// com o Redis fora do ar, tudo passa: limitar é conveniência, nunca
// motivo para derrubar uma reserva.
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func New(cfg *config.Config) *Limiter {
	if cfg.RedisAddr == "" || cfg.BookingRateLimit <= 0 {
		return &Limiter{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &Limiter{
		client: client,
		limit:  cfg.BookingRateLimit,
		window: time.Hour,
	}
}

func (l *Limiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil {
		return true
	}

	redisKey := "booking_rate:" + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		log.Println("ratelimit incr error:", err)
		return true
	}

	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			log.Println("ratelimit expire error:", err)
		}
	}

	return count <= int64(l.limit)
}
