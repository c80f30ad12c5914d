// Package syncmap offers a lightweight, generic, concurrency-safe map guarded
// by a sync.RWMutex.  It backs the gateway tool registry: SetBatch lets one
// server's catalog land as a single atomic merge relative to other writers.
package syncmap
