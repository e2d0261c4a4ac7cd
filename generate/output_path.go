package generate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"bgc/config"
	"bgc/state"
)

const outputExt = ".css"

// buildOutputPath returns stylesheet file path for the theme. Empty
// destination means standard output and results in empty path. When
// destination is a directory file name is built from user-defined template,
// cleaned up and if requested transliterated.
func buildOutputPath(src, dst string, env *state.LocalEnv, log *zap.Logger) string {
	if len(dst) == 0 {
		return ""
	}
	if fi, err := os.Stat(dst); (err == nil && fi.IsDir()) || strings.HasSuffix(dst, string(os.PathSeparator)) {
		return filepath.Join(dst, buildFileName(src, env, log))
	}
	return dst
}

func buildFileName(src string, env *state.LocalEnv, log *zap.Logger) string {
	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))

	if tmpl := env.Cfg.Output.NameTemplate; len(tmpl) > 0 {
		expanded, err := expandTemplate(config.OutputNameTemplateFieldName, tmpl, newValues(src, 0))
		switch {
		case err != nil:
			log.Warn("Unable to prepare output filename, using default", zap.Error(err))
		case len(strings.TrimSpace(expanded)) == 0:
			log.Warn("Output filename template produced empty name, using default", zap.String("template", tmpl))
		default:
			name = strings.TrimSpace(expanded)
		}
	}

	if env.Cfg.Output.Transliterate {
		name = slug.Make(name)
	}
	name = config.CleanFileName(name)
	if !strings.EqualFold(filepath.Ext(name), outputExt) {
		name += outputExt
	}
	return name
}
