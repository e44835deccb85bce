package pergola

import _ "embed"

// Version is the release version, kept in version.txt so release tooling can
// stamp it without touching source.
//
//go:embed version.txt
var Version string
