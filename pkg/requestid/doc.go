// Package requestid tags every HTTP request with an X-Request-ID so log
// records of one detection request can be correlated.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
package requestid
