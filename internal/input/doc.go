// Package input provides line sources for the dispatch engine's reader loop.
package input
