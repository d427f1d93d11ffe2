// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// Headers are checked in order and the first valid address wins:
//
//  1. CF-Connecting-IP
//  2. X-Vercel-Forwarded-For
//  3. X-Forwarded-For (first valid entry of the list)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Middleware stores the resolved address in the request context and
// LoggerExtractor copies it into log records as "client_ip":
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
//
// GetIP never fails; an empty string means no valid address was found.
package clientip
