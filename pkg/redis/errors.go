package redis

import "errors"

var (
	ErrEmptyConnectionURL           = errors.New("redis: empty connection URL")
	ErrFailedToParseRedisConnString = errors.New("redis: failed to parse connection string")
	ErrRedisNotReady                = errors.New("redis: server did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("redis: healthcheck failed")
)
