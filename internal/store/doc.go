// Package store reads a pass(1) password store: it finds autotype
// descriptors paired with credential files and loads decrypted entries
// through the pass command.
package store
