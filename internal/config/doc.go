// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

// Package config loads Tablemate configuration with koanf.
//
// Sources are layered with later sources overriding earlier ones:
//
//  1. Defaults compiled into defaultConfig
//  2. A YAML file: $CONFIG_PATH, ./config.yaml, or /etc/tablemate/config.yaml
//  3. Environment variables (HTTP_PORT, LOG_LEVEL, STORE_PATH, RECOMMEND_*, ...)
//
// Only variables in the mapping table are read, so unrelated environment
// variables never leak into the configuration. Slice settings such as
// CORS_ORIGINS and RECOMMEND_DROP_ORDER accept comma-separated values.
//
// Example config.yaml:
//
//	server:
//	  port: 8080
//	store:
//	  path: /var/lib/tablemate
//	  seed_file: /etc/tablemate/seed.yaml
//	recommend:
//	  drop_order: [price, cuisine, rating]
//	  request_timeout: 3s
package config
