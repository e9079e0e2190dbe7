// Package redis provides the connection layer for Redis-backed event sources.
//
// It wraps the go-redis client with a retrying Connect helper and a health-check probe, so
// applications can feed an events.RedisSource from a verified connection.  Configuration is
// described by the Config struct whose fields can be populated from environment variables via
// github.com/caarlos0/env.
//
// # Usage
//
//	import (
//	    "github.com/caarlos0/env/v11"
//
//	    "github.com/dmitrymomot/eventbridge/pkg/events"
//	    "github.com/dmitrymomot/eventbridge/pkg/redis"
//	)
//
//	var cfg redis.Config
//	if err := env.Parse(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	src := events.NewRedisSource[Order](client, "orders")
//
// Connect retries with the configured interval until the server answers a ping or the connect
// timeout elapses; Healthcheck exposes the same ping as a probe function for liveness and
// readiness endpoints.
package redis
