// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the relay.
//
// It wires cobra commands, client configuration and the client submission
// service into a single process lifecycle: progress files are posted to the
// relay once and the relay's answer is printed. Nothing is queued or
// retried.
package client
