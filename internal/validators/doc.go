// Package validators checks incoming request payloads before they reach the
// service layer and converts them into typed domain values. Each function
// returns the collected field errors instead of stopping at the first one, so
// a client sees every problem with the payload at once.
package validators
