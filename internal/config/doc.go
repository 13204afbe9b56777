// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the relay server and the chat client.
//
// Configuration is assembled from multiple sources. When two sources set the
// same field, the earlier one in this list wins:
//  1. Command-line flags (relay only)
//  2. Environment variables
//  3. Config file, JSON or YAML by extension (path from -c/-config or CONFIG)
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the relay and
// [GetClientConfig] for the client.
package config
