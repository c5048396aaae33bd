// Package httpclient is the outbound HTTP adapter shared by every provider
// adapter. It builds requests with JSON, URL-encoded form, or multipart
// bodies, attaches bearer or API-key authentication, and classifies non-2xx
// responses into typed errors that keep the raw response body.
//
// The adapter never retries and never rate limits: one Do call is exactly
// one outbound request.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    Name:    "cerebras",
//	    BaseURL: "https://api.cerebras.ai",
//	    Timeout: 60 * time.Second,
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodPost,
//	    Path:   "/v1/chat/completions",
//	    Auth:   httpclient.BearerAuth(key),
//	    Body:   payload,
//	})
package httpclient
