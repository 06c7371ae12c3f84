package transfer

// Package transfer implements the HTTP download side of the install pipeline:
// a thin client that fetches an installer URL into a local file.
