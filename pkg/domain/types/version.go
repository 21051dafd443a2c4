package types

// Version is the application version, overridden at build time via -ldflags.
var Version = "dev"

// ServiceName is reported by the health endpoint and used in the Sentry release name.
const ServiceName = "rtcfetch"
