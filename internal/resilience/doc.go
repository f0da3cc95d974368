// Package resilience provides reliability and fault tolerance patterns for the application.
//
// The subpackages supply:
//   - circuit breakers for the sentiment providers (Claude, OpenAI) and the database
//   - retry with exponential backoff and jitter, used while waiting for the database at startup
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.OpenAIAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return classify(ctx, text)
//	})
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return db.PingContext(ctx)
//	})
package resilience
