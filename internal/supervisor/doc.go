// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

/*
Package supervisor runs Tablemate's long-lived services under suture v4.

# Overview

Services are grouped so a failure in one layer does not restart the other:

	RootSupervisor ("tablemate")
	├── DataSupervisor ("data-layer")
	│   └── StoreGCService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The store itself is not supervised. BadgerDB is an embedded library whose
lifetime is bound to the process; main opens it before the tree starts and
closes it after the tree stops.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewStoreGCService(st, interval, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)

# Failure Handling

Each failure increments a counter that decays over FailureDecay seconds.
When the counter exceeds FailureThreshold the supervisor waits
FailureBackoff before the next restart. Supervisor events are logged
through sutureslog into the zerolog pipeline.

Services return ctx.Err() on shutdown. A nil return means the service
finished and will not be restarted.
*/
package supervisor
