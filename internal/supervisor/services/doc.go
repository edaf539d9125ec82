// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

/*
Package services provides suture.Service wrappers for Tablemate components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve method and implements fmt.Stringer so supervisor events name it.

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts http.ErrServerClosed into a clean stop

Store GC (StoreGCService):
  - Runs BadgerDB value log GC on a fixed interval
  - Logs failures and retries on the next tick

Usage:

	tree.AddDataService(services.NewStoreGCService(st, cfg.Store.GCInterval, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
*/
package services
