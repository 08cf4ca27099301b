package db

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Vibe-Web-Agency/dashboard/internal/config"
)

// NewRedis ouvre le client Redis utilisé pour les jetons de
// réinitialisation de mot de passe. Un ping raté ne bloque pas le
// démarrage : le flux mot-de-passe-oublié échouera proprement à l'usage.
func NewRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s: %v", cfg.RedisAddr, err)
	}

	return client
}
