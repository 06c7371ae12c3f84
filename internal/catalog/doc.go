package catalog

// Package catalog holds the static table of installable applications. Each
// entry maps a platform to an install action (direct download URL or a
// package-manager reference); action tokens are parsed once at catalog
// construction so lookups never fail on malformed input.
