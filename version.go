package fftcompat

import (
	"strconv"
	"strings"

	"github.com/cwbudde/fftcompat/backend"
)

// GetVersion reports the engine version encoded as
// major*10000 + minor*100 + patch. Each dotted component is zero-padded to
// two digits before concatenation; anything past the patch component is
// ignored.
func GetVersion() (int, Result) {
	eng := backend.ActiveEngine()
	if eng == nil {
		return 0, InternalError
	}
	v, err := eng.Version()
	if err != nil {
		return 0, InvalidValue
	}

	sections := strings.Split(v, ".")
	if len(sections) > 3 {
		sections = sections[:3]
	}
	var encoded strings.Builder
	for _, s := range sections {
		if len(s) == 1 {
			encoded.WriteByte('0')
		}
		encoded.WriteString(s)
	}
	version, err := strconv.Atoi(encoded.String())
	if err != nil {
		return 0, InternalError
	}
	return version, Success
}

// GetProperty reports one component of the engine version.
func GetProperty(p Property) (int, Result) {
	full, res := GetVersion()
	if res != Success {
		return 0, res
	}

	major := full / 10000
	minor := (full - major*10000) / 100
	patch := full - major*10000 - minor*100

	switch p {
	case MajorVersion:
		return major, Success
	case MinorVersion:
		return minor, Success
	case PatchLevel:
		return patch, Success
	}
	return 0, InvalidType
}
