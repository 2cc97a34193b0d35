// Package config provides configuration loading, merging, and validation
// facilities for the relay server and its command-line client.
//
// Configuration is assembled from multiple sources; for every field the
// first source that supplies a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the relay server and
// [GetClientConfig] for the submission client.
package config
