// Package intern provides a weakly-held identity cache.
//
// A Cache maps keys to shared instances without keeping those instances
// alive. While any caller holds an instance, every lookup for its key returns
// that same pointer. Once the last strong reference is dropped the garbage
// collector may reclaim it, and a cleanup registered with runtime.AddCleanup
// removes the slot. A later lookup builds a fresh instance.
//
// Eviction is opportunistic: there is no bound on how long an unreachable
// instance's slot survives, only a guarantee that it is eventually removed
// once the collector runs.
//
// Lookup, construction and insertion happen under one mutex, so concurrent
// misses for the same key never produce two live instances.
package intern
