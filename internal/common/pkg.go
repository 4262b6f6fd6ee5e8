package common

// UnknownStr is the placeholder used when stringifying out-of-range enums.
const UnknownStr = "unknown"
