// Package config provides configuration structures and utilities for the
// presence scoring engine. It defines scoring weights, report generation
// preferences, and history database settings.
package config
