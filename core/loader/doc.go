// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which reports its name, whether it
// is enabled, and registers its routes on a Fiber router.
//
// # Manager
//
// The Manager holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
//
// Currently the reconciliation feature is the only registered module.
package loader
