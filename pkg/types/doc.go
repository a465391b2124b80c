// Package types defines the report and authentication entities, the
// service configuration, and the standard error values shared across the
// curbside service.
package types
