package configs

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. RequireIdentity gates the mutating
// endpoints behind a non-anonymous caller principal.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// RequireIdentity rejects campaign creation and contributions from the
	// anonymous principal.
	RequireIdentity bool `env:"REQUIRE_IDENTITY" envDefault:"false"`
}
