package model

// Package model defines domain data structures used across the app: platform
// identifiers, per-item status enums, and run reports. Structures are designed
// for direct use in the UI and explicit state transitions.
