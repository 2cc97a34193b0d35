// Package utils provides general-purpose helper utilities
// used across different parts of the relay.
// Includes the submission digest, JSON response writing, HTTP client
// initialization and trace identifier generation.
package utils
