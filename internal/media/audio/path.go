package audio

import (
	"path/filepath"
	"strings"
)

// OutputPath builds <outputDir>/<input stem>.<extension>.
//
// The stem is the input base name with its final extension removed. Dotfiles
// such as ".track" keep their full name as the stem.
func OutputPath(input, outputDir string, format Format) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return filepath.Join(outputDir, stem+"."+format.Extension())
}
