// Package stream implements the live price-update client.
//
// The client:
//   - Maintains one WebSocket connection to the provider's streaming endpoint
//   - Subscribes to a fixed set of ten major symbols on open
//   - Parses "price" frames into model.PriceUpdate and hands them to a handler
//   - Reconnects with linear backoff, giving up after five failed attempts
//
// Terminal failure is surfaced through the state handler so the consumer can
// tell the user that live updates stopped.
package stream
