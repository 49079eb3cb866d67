// Package config loads project configuration for the affirm CLI and
// runner from a .affirm.yaml file.
package config
