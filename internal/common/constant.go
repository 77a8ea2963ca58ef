package common

// RequestIDHeaderName is the HTTP header used to carry a per-request
// correlation id on outbound calls.
const RequestIDHeaderName = "X-Request-ID"
