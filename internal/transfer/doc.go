// Package transfer copies a profile between a target directory and a storage
// directory.
//
// The target directory always holds the live save under the fixed name
// TargetFileName; the storage directory holds profiles under arbitrary names.
// Extract copies target → storage, Load copies storage → target. Data is
// streamed, so profiles larger than memory are fine. The destination is
// created or truncated; there is no verification, retry or cleanup of a
// partially written file.
package transfer
