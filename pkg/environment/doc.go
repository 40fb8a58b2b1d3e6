// Package environment names the deployment environment and carries it
// through context.Context and structured logs.
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	ctx = environment.WithContext(ctx, env)
//	if environment.IsTest(ctx) {
//	    // relaxed fixtures
//	}
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// carries an "env" attribute.
package environment
