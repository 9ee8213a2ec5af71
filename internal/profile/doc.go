// Package profile decides the file name a profile gets inside a storage
// directory.
//
// A name given on the command line is used as is, apart from a check that it
// stays inside the storage directory. Without one the user is prompted, and
// every candidate must pass a validator: by default it rejects names with a
// path separator and names that already exist in the storage directory.
package profile
