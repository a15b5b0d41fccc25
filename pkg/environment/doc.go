// Package environment names the deployment environment the checker runs in
// (development, staging or production) and carries it through
// context.Context so log records can be tagged with it.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	ctx := environment.WithContext(ctx, env)
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "started") // ... env=production
package environment
