package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidReference indicates no output path can be derived from the reference path.
var ErrInvalidReference = errors.New("invalid reference path")

// ResolvePath places the workbook beside reference, named after its stem and
// the requested mode: /data/report.json with mode cargo gives
// /data/report_cargo.xlsx. An empty mode is labelled "full".
func ResolvePath(reference, mode string) (string, error) {
	if strings.TrimSpace(reference) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidReference)
	}
	if strings.HasSuffix(reference, "/") || strings.HasSuffix(reference, string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s names a directory", ErrInvalidReference, reference)
	}
	if strings.ContainsAny(mode, `/\`) {
		return "", fmt.Errorf("%w: mode %q contains a path separator", ErrInvalidReference, mode)
	}

	base := filepath.Base(reference)
	if base == "." || base == ".." || base == string(os.PathSeparator) {
		return "", fmt.Errorf("%w: %s has no file name", ErrInvalidReference, reference)
	}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}

	label := mode
	if label == "" {
		label = ModeFull
	}

	return filepath.Join(filepath.Dir(reference), stem+"_"+label+".xlsx"), nil
}

// Confine anchors reference under root and rejects it when its cleaned
// directory is outside root. Relative references are taken from root.
func Confine(root, reference string) (string, error) {
	if strings.TrimSpace(reference) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidReference)
	}

	candidate := reference
	if !filepath.IsAbs(reference) {
		candidate = root + string(os.PathSeparator) + reference
	}

	rel, err := filepath.Rel(filepath.Clean(root), filepath.Dir(filepath.Clean(candidate)))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s is outside %s", ErrInvalidReference, reference, root)
	}

	return candidate, nil
}
