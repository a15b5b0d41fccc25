// Package redis connects to Redis and exposes a registered-usernames set as a
// directory source.
//
// Connect retries according to Config, and Healthcheck wraps a ping for
// readiness probes. Source reads the set named by Config.UsernamesKey once,
// at startup; nothing in this package writes to Redis.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	src, err := redis.NewSource(client, cfg.UsernamesKey)
//	if err != nil {
//	    return err
//	}
//	dir, err := directory.Load(ctx, src)
package redis
