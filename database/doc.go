// Package database mirrors enum registries into lookup tables so that other
// tables can reference enum values with foreign keys. It covers connection
// setup, YAML configuration, lookup table sync and drift detection, foreign
// key helpers and logging, built on top of Bun.
package database
