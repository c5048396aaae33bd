// Package app holds the airelay command tree.
package app
