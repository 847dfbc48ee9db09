// Package testing provides test utilities for the SchoolManagerCase library.
//
// This package offers helpers for setting up test environments, particularly
// embedded NATS servers for integration-testing the store and notify
// adapters. It follows Go's convention of providing testing utilities in a
// dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateJetStreamKV: Convenience wrapper for KV bucket creation
//   - NewTestLogger: types.Logger writing through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    smtest "github.com/Sloozu/SchoolManagerCase/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := smtest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
