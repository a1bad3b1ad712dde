// Package testutil provides shared helpers for guidex tests: GUID fixtures,
// section builders, canned handlers, and a scripted storage provider.
package testutil
