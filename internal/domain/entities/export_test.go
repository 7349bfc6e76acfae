package entities

// ExpandToken exports expandToken for testing.
var ExpandToken = expandToken //nolint:gochecknoglobals // test export
