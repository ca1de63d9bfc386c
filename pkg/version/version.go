// Package version compares pacman-style version strings.
//
// A full version has the shape [epoch:]pkgver[-pkgrel]. Comparison follows
// the ordering pacman's vercmp(8) applies: epochs compare numerically
// (a missing epoch is 0), pkgver and pkgrel compare segment-wise where runs
// of digits compare numerically, runs of letters compare lexically, and a
// digit segment outranks a letter segment. The release component only
// participates when both versions carry one.
package version

import "strings"

// Compare returns a negative number if a is older than b, zero if they are
// equal, and a positive number if a is newer than b.
func Compare(a, b string) int {
	av := parse(a)
	bv := parse(b)

	if c := rpmvercmp(av.epoch, bv.epoch); c != 0 {
		return c
	}
	if c := rpmvercmp(av.ver, bv.ver); c != 0 {
		return c
	}
	if av.rel != "" && bv.rel != "" {
		return rpmvercmp(av.rel, bv.rel)
	}
	return 0
}

// Newer reports whether remote is strictly newer than installed.
func Newer(remote, installed string) bool {
	return Compare(remote, installed) > 0
}

type parsed struct {
	epoch string
	ver   string
	rel   string
}

// parse splits [epoch:]pkgver[-pkgrel]. Only a leading all-digit run
// followed by ':' counts as an epoch; the release is everything after the
// last '-'.
func parse(s string) parsed {
	p := parsed{epoch: "0", ver: s}

	if i := strings.IndexByte(p.ver, ':'); i > 0 && allDigits(p.ver[:i]) {
		p.epoch = p.ver[:i]
		p.ver = p.ver[i+1:]
	}
	if i := strings.LastIndexByte(p.ver, '-'); i >= 0 {
		p.rel = p.ver[i+1:]
		p.ver = p.ver[:i]
	}
	return p
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool { return isDigit(c) || isAlpha(c) }

// rpmvercmp compares two version fragments segment by segment.
func rpmvercmp(a, b string) int {
	if a == b {
		return 0
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		for i < len(a) && !isAlnum(a[i]) {
			i++
		}
		for j < len(b) && !isAlnum(b[j]) {
			j++
		}
		if i >= len(a) || j >= len(b) {
			break
		}

		numeric := isDigit(a[i])
		segA, ni := takeSegment(a, i, numeric)
		segB, nj := takeSegment(b, j, numeric)

		// Segment types differ at this position: a numeric segment is
		// always newer than a letter segment.
		if segB == "" {
			if numeric {
				return 1
			}
			return -1
		}

		if numeric {
			segA = strings.TrimLeft(segA, "0")
			segB = strings.TrimLeft(segB, "0")
			if len(segA) != len(segB) {
				if len(segA) > len(segB) {
					return 1
				}
				return -1
			}
		}
		if c := strings.Compare(segA, segB); c != 0 {
			return c
		}

		i, j = ni, nj
	}

	if i >= len(a) && j >= len(b) {
		return 0
	}

	// One side ran out. A remaining letter suffix marks the older version
	// (1.0a < 1.0); any other remainder marks the newer one (1.0.1 > 1.0).
	if (i >= len(a) && !remainderAlpha(b, j)) || remainderAlpha(a, i) {
		return -1
	}
	return 1
}

// takeSegment extracts the run of digits (numeric) or letters starting at
// position i. Returns the run and the index past it. The run is empty when
// the character at i is of the other class.
func takeSegment(s string, i int, numeric bool) (string, int) {
	start := i
	for i < len(s) {
		if numeric && !isDigit(s[i]) {
			break
		}
		if !numeric && !isAlpha(s[i]) {
			break
		}
		i++
	}
	return s[start:i], i
}

func remainderAlpha(s string, i int) bool {
	return i < len(s) && isAlpha(s[i])
}
