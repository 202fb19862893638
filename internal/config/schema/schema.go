// Package schema embeds the versioned JSON schemas of indicator files.
package schema

import (
	"embed"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

//go:embed v*/*.json
var fs embed.FS

// SchemaType names a schema file within a version directory.
type SchemaType string

// String returns the string representation of the schema type.
func (s SchemaType) String() string {
	return string(s)
}

// SchemaTypeIndicator validates whole indicator files.
const SchemaTypeIndicator SchemaType = "indicator"

var (
	// versionRegex matches "v1", "v1-alpha.1", "v2-rc.3" and so on.
	versionRegex = regexp.MustCompile(`^v(\d+)(?:-(alpha|beta|rc)\.(\d+))?$`)
	// preReleaseOrder ranks pre-release kinds below the final release.
	preReleaseOrder = map[string]int{"alpha": 0, "beta": 1, "rc": 2, "": 3}
)

// Get returns the schema of the given type for a version.
func Get(schemaType SchemaType, version string) ([]byte, error) {
	data, err := fs.ReadFile(version + "/" + schemaType.String() + ".json")
	if err != nil {
		return nil, fmt.Errorf("%s schema not found for version %s", schemaType, version)
	}
	return data, nil
}

// GetIndicatorSchema returns the indicator file schema for a version.
func GetIndicatorSchema(version string) ([]byte, error) {
	return Get(SchemaTypeIndicator, version)
}

// Versions returns every embedded schema version in ascending order.
func Versions() ([]string, error) {
	entries, err := fs.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}

	var versions []string
	for _, entry := range entries {
		if entry.IsDir() {
			versions = append(versions, entry.Name())
		}
	}
	slices.SortFunc(versions, compareSchemaVersions)
	return versions, nil
}

// LatestVersion returns the newest embedded schema version.
func LatestVersion() (string, error) {
	versions, err := Versions()
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("no indicator schemas found")
	}
	return versions[len(versions)-1], nil
}

// compareSchemaVersions returns -1 if a < b, 0 if a == b, 1 if a > b.
// Malformed versions sort after well formed ones.
func compareSchemaVersions(a, b string) int {
	parse := func(v string) (major int, pre string, preNum int, valid bool) {
		m := versionRegex.FindStringSubmatch(v)
		if m == nil {
			return 0, "", 0, false
		}
		major, _ = strconv.Atoi(m[1])
		pre = m[2]
		if m[3] != "" {
			preNum, _ = strconv.Atoi(m[3])
		}
		return major, pre, preNum, true
	}

	majA, preA, numA, validA := parse(a)
	majB, preB, numB, validB := parse(b)

	switch {
	case !validA && !validB:
		return strings.Compare(a, b)
	case !validA:
		return 1
	case !validB:
		return -1
	}

	if c := compareInts(majA, majB); c != 0 {
		return c
	}
	if c := compareInts(preReleaseOrder[preA], preReleaseOrder[preB]); c != 0 {
		return c
	}
	return compareInts(numA, numB)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
