package main

// Exit codes
const (
	ExitSuccess       = 0 // Success
	ExitError         = 1 // General error (invalid arguments, runtime failure)
	ExitMissingToken  = 2 // DISCORD_TOKEN not configured
	ExitProviderError = 3 // Joke provider unreachable or returned an error
	ExitNotFound      = 4 // No joke with the requested ID
	ExitConfigError   = 5 // Config file or .env could not be read
)
