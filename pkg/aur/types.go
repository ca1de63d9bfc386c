package aur

// Package holds metadata for a package from the AUR RPC interface.
//
// A nil Depends slice is valid and means the package declares no runtime
// dependencies; the RPC omits the field entirely in that case.
type Package struct {
	Name         string   // Package base name
	Version      string   // Full version as published ([epoch:]pkgver-pkgrel)
	Description  string   // Short description (may be empty)
	Maintainer   string   // Current maintainer (empty when orphaned)
	URL          string   // Upstream project URL (may be empty)
	Depends      []string // Runtime dependencies, may carry version constraints
	MakeDepends  []string // Build-time dependencies
	OutOfDate    bool     // Flagged out-of-date by users
	NumVotes     int      // AUR vote count
	LastModified int64    // Unix timestamp of the last package update
}

// AllDepends returns runtime dependencies followed by build dependencies,
// the order acquisition walks them in.
func (p *Package) AllDepends() []string {
	if len(p.MakeDepends) == 0 {
		return p.Depends
	}
	out := make([]string, 0, len(p.Depends)+len(p.MakeDepends))
	out = append(out, p.Depends...)
	out = append(out, p.MakeDepends...)
	return out
}

// apiResponse mirrors the AUR RPC v5 envelope.
type apiResponse struct {
	Version     int         `json:"version"`
	Type        string      `json:"type"`
	ResultCount int         `json:"resultcount"`
	Results     []apiResult `json:"results"`
	Error       string      `json:"error"`
}

type apiResult struct {
	Name         string   `json:"Name"`
	PackageBase  string   `json:"PackageBase"`
	Version      string   `json:"Version"`
	Description  string   `json:"Description"`
	Maintainer   string   `json:"Maintainer"`
	URL          string   `json:"URL"`
	Depends      []string `json:"Depends"`
	MakeDepends  []string `json:"MakeDepends"`
	OutOfDate    *int64   `json:"OutOfDate"`
	NumVotes     int      `json:"NumVotes"`
	LastModified int64    `json:"LastModified"`
}
