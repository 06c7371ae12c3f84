package install

// Package install implements the dispatch engine at the core of the app: it
// resolves each selected application against the catalog, then either fetches
// a direct-download installer and opens it, or prints the package-manager
// command the user should run. Items are processed sequentially on a single
// background worker; progress is streamed to the consumer as log events ending
// with a completion report.
