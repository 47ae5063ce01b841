// Package wyhash implements the one-shot seeded wyhash-64 sum used as an
// alternative text strategy.
package wyhash
