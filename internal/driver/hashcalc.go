package driver

import (
	"strconv"

	"fortio.org/safecast"

	"smergiel/internal/project"
	"smergiel/internal/source"
)

// generatorSchema is bumped whenever javagen output changes shape, so that
// cached Java from an older build is not reused.
const generatorSchema = 2

// emitKey: H(source || class || schema || all-errors).
func emitKey(file *source.File, className string, reportAll bool) project.Digest {
	return project.Combine(project.Digest(file.Hash),
		className,
		strconv.Itoa(generatorSchema),
		strconv.FormatBool(reportAll),
	)
}

func maxErrorsFor(maxDiagnostics int) uint {
	n, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return 0
	}
	return n
}

func itoa[T ~uint | ~int](v T) string {
	return strconv.FormatInt(int64(v), 10)
}
