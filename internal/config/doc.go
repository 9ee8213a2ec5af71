// Package config holds the only persisted state of xatsw: the registry of
// named storage directories and the name of the default storage.
//
// # Configuration File
//
// The configuration is a JSON document, by default xatsw.conf in the working
// directory:
//
//	{
//	  "storages": {
//	    "main": "/home/me/saves",
//	    "usb": "/mnt/usb/saves"
//	  },
//	  "current_storage": "main"
//	}
//
// # Usage
//
// A Store loads the document once at startup and writes it back when the
// command finishes. Loading never fails: a missing, unreadable or malformed
// file yields an empty Config and a log line. Registry operations work on the
// in-memory Config:
//   - List entries with Storages
//   - Register a directory with Add
//   - Unregister with Remove
//   - Pick the default with SetDefault and resolve it with Current
//
// # Concurrency
//
// There is no locking. Two xatsw processes running at the same time may
// overwrite each other's configuration changes.
package config
