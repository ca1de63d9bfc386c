// Package srcinfo reads the metadata files shipped in a package's source
// checkout: the generated .SRCINFO (structured key = value pairs, used for
// update comparison) and the PKGBUILD itself (used for offline dependency
// verification).
package srcinfo

import (
	"bufio"
	"os"
	"strings"

	"github.com/aurum-pm/aurum/pkg/errors"
)

// FileName is the structured metadata file generated by makepkg.
const FileName = ".SRCINFO"

// BuildFileName is the build manifest every package ships.
const BuildFileName = "PKGBUILD"

// Srcinfo holds the fields aurum reads from a .SRCINFO file.
type Srcinfo struct {
	PkgBase     string
	PkgVer      string
	PkgRel      string
	Epoch       string
	Depends     []string
	MakeDepends []string
}

// FullVersion combines the version fields into the single string pacman
// reports for an installed package: [epoch:]pkgver[-pkgrel].
func (s *Srcinfo) FullVersion() string {
	v := s.PkgVer
	if s.Epoch != "" {
		v = s.Epoch + ":" + v
	}
	if s.PkgRel != "" {
		v = v + "-" + s.PkgRel
	}
	return v
}

// ParseFile reads a .SRCINFO file from disk.
func ParseFile(path string) (*Srcinfo, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no %s at %s", FileName, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f)
}

func parse(f *os.File) (*Srcinfo, error) {
	info := &Srcinfo{}
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "pkgbase":
			info.PkgBase = value
		case "pkgver", "version":
			info.PkgVer = value
		case "pkgrel", "release":
			info.PkgRel = value
		case "epoch":
			info.Epoch = value
		case "depends":
			if value != "" {
				info.Depends = append(info.Depends, value)
			}
		case "makedepends":
			if value != "" {
				info.MakeDepends = append(info.MakeDepends, value)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if info.PkgVer == "" {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "missing pkgver")
	}
	return info, nil
}

// DependsFromPKGBUILD scans a PKGBUILD for depends declarations and returns
// the listed names, quotes stripped. Both single-line and multi-line bash
// arrays are handled; anything fancier (command substitution, variables) is
// returned verbatim for the caller to strip.
func DependsFromPKGBUILD(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no %s at %s", BuildFileName, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		deps    []string
		inArray bool
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if !inArray {
			var rest string
			switch {
			case strings.HasPrefix(line, "depends="):
				rest = strings.TrimPrefix(line, "depends=")
			case strings.HasPrefix(line, "makedepends="):
				rest = strings.TrimPrefix(line, "makedepends=")
			default:
				continue
			}
			rest = strings.TrimPrefix(rest, "(")
			if closed := strings.HasSuffix(rest, ")"); closed {
				rest = strings.TrimSuffix(rest, ")")
			} else {
				inArray = true
			}
			deps = append(deps, splitNames(rest)...)
			continue
		}

		if strings.HasSuffix(line, ")") {
			inArray = false
			line = strings.TrimSuffix(line, ")")
		}
		deps = append(deps, splitNames(line)...)
	}
	return deps, scanner.Err()
}

func splitNames(s string) []string {
	var names []string
	for _, field := range strings.Fields(s) {
		name := strings.Trim(field, `'"`)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
