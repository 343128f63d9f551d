// Package datastore holds the tracker's last-known descriptor per path.
// The store is owned by a single tracker and lives only in memory; nothing
// is persisted between runs.
package datastore
