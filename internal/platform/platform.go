// Package platform identifies the host operating system for build
// dependency lookups. Identifiers are lowercase distribution names
// ("ubuntu", "debian", "centos", "redhat", "fedora", "suse"), the same
// keys the deps package tables use.
package platform

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const osRelease = "/etc/os-release"

// aliases maps os-release IDs onto dependency-table identifiers. SUSE
// products report themselves by product name, RHEL by "rhel".
var aliases = map[string]string{
	"rhel":                "redhat",
	"sles":                "suse",
	"sled":                "suse",
	"opensuse":            "suse",
	"opensuse-leap":       "suse",
	"opensuse-tumbleweed": "suse",
}

var known = map[string]bool{
	"debian": true,
	"ubuntu": true,
	"suse":   true,
	"centos": true,
	"redhat": true,
	"fedora": true,
}

// Detect identifies the host platform from /etc/os-release. Unrecognized
// distributions come back verbatim; deps.Resolve treats those as
// unsupported and resolves to no packages. An error means the host gave us
// nothing to go on.
func Detect() (string, error) {
	f, err := os.Open(osRelease)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", osRelease, err)
	}
	defer f.Close()

	id, idLike := parseOSRelease(f)
	p := identifier(id, idLike)
	if p == "" {
		return "", fmt.Errorf("no ID field in %s", osRelease)
	}
	return p, nil
}

// parseOSRelease extracts the ID and ID_LIKE fields from os-release data.
func parseOSRelease(r io.Reader) (id string, idLike []string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "ID="):
			id = unquote(strings.TrimPrefix(line, "ID="))
		case strings.HasPrefix(line, "ID_LIKE="):
			idLike = strings.Fields(unquote(strings.TrimPrefix(line, "ID_LIKE=")))
		}
	}
	return id, idLike
}

func unquote(s string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(s), `"'`))
}

// identifier normalizes an os-release ID, falling back to ID_LIKE when the
// ID itself is not a distribution the dependency tables know. Linux Mint,
// for example, reports ID=linuxmint with ID_LIKE="ubuntu debian".
func identifier(id string, idLike []string) string {
	if p := normalize(id); p != "" {
		return p
	}
	for _, like := range idLike {
		if p := normalize(like); p != "" {
			return p
		}
	}
	return id
}

func normalize(id string) string {
	if alias, ok := aliases[id]; ok {
		return alias
	}
	if known[id] {
		return id
	}
	return ""
}
