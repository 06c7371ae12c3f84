package platform

// Package platform contains OS/platform integration and external tooling glue:
// host platform detection, filesystem helpers, and launching files or folders
// through the OS default handlers.
