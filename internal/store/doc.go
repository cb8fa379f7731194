// Package store provides the filesystem access layer of miscord.
//
// [FileStore] abstracts the few file operations the config loader needs
// (read, write, ensure directory) so that the loader can be tested against a
// generated mock; [NewFileStore] is the implementation backed by package os.
package store
