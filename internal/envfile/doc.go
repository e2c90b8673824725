// Package envfile connects the dotenv parser to the filesystem.
//
// It loads and serializes .env files, searches upward through parent
// directories for the nearest env file, and offers small mutation helpers
// (get, set, unset, merge) built on a full parse/serialize round trip
// rather than line-oriented text editing.
package envfile
