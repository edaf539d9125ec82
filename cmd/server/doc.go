// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

/*
Package main is the entry point for the Tablemate server.

Tablemate recommends restaurants for a group of family members, ranking
places by how many members' dietary restrictions they accommodate and then
by cuisine preference and rating. When the request filters leave nothing
viable, filters are relaxed in a fixed order and, as a last resort, the
least-served member is dropped from the group.

# Startup

 1. Configuration: Koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog, JSON or console
 3. Store: BadgerDB, seeded from SEED_FILE when empty
 4. Recommendation engine
 5. HTTP router: chi with CORS, rate limiting and Prometheus metrics
 6. Supervisor tree: suture v4 running the HTTP server and store GC

# Supervisor Tree

	RootSupervisor ("tablemate")
	├── DataSupervisor ("data-layer")
	│   └── StoreGCService (on-disk stores only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains for up
to SHUTDOWN_TIMEOUT, then the store is closed.

# Example Usage

	export STORE_PATH=/var/lib/tablemate
	export SEED_FILE=configs/seed.yaml
	export CORS_ORIGINS=https://tablemate.example.com
	./tablemate

Development with an in-memory store:

	STORE_IN_MEMORY=true SEED_FILE=configs/seed.yaml LOG_FORMAT=console ./tablemate
*/
package main
