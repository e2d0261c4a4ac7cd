// Package generate implements commands producing and inspecting border
// gradient stylesheets.
package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"bgc/config"
	"bgc/css"
	"bgc/gradient"
	"bgc/render"
	"bgc/state"
	"bgc/theme"
)

// Run is the action of generate command.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no theme file has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		keepSep := os.IsPathSeparator(dst[len(dst)-1])
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
		if keepSep {
			dst += string(os.PathSeparator)
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite, env.Watch = cmd.Bool("overwrite"), cmd.Bool("watch")

	j := &job{env: env, log: log, src: src, dst: dst, stdout: os.Stdout}
	if err := j.run(env.Overwrite); err != nil {
		return err
	}
	if !env.Watch {
		return nil
	}

	w, err := newWatcher(src, cmd.Duration("debounce"), log)
	if err != nil {
		return fmt.Errorf("unable to watch theme file: %w", err)
	}
	// we are replacing our own output from now on
	return w.Run(ctx, func() error { return j.run(true) })
}

// job produces stylesheet for a single theme file.
type job struct {
	env    *state.LocalEnv
	log    *zap.Logger
	src    string
	dst    string
	stdout io.Writer
}

func (j *job) run(overwrite bool) error {
	start := time.Now()

	th, err := theme.Load(j.src, j.env.Log)
	if err != nil {
		return err
	}
	if err := j.env.Rpt.StoreCopy("theme/"+filepath.Base(j.src), j.src); err != nil {
		j.log.Warn("Unable to store theme in report", zap.Error(err))
	}

	sheet, utilities := Build(th, j.env.Generator(), j.env.Log)
	if sheet.Empty() {
		j.log.Warn("Theme produced no utilities", zap.String("theme", j.src))
	}
	if banner := j.env.Cfg.Output.Banner; len(banner) > 0 {
		text, err := expandTemplate(config.BannerTemplateFieldName, banner, newValues(j.src, utilities))
		if err != nil {
			return fmt.Errorf("unable to prepare banner: %w", err)
		}
		sheet.Items = append([]css.StylesheetItem{{Comment: &text}}, sheet.Items...)
	}

	buf := new(bytes.Buffer)
	if _, err := sheet.WriteTo(buf); err != nil {
		return err
	}

	out := buildOutputPath(j.src, j.dst, j.env, j.log)
	if err := writeOutput(out, buf.Bytes(), overwrite, j.stdout); err != nil {
		return err
	}
	j.env.Rpt.StoreData("result/"+filepath.Base(outputName(out)), buf.Bytes())

	j.log.Info("Stylesheet generated",
		zap.String("theme", j.src),
		zap.String("destination", outputName(out)),
		zap.Int("utilities", utilities),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Build generates utilities for the theme and renders them into stylesheet.
// It returns stylesheet and number of generated utilities.
func Build(th *theme.Theme, g *gradient.Generator, log *zap.Logger) (*css.Stylesheet, int) {
	batches := g.Generate(th)

	count := 0
	for _, b := range batches {
		count += len(b.Utilities)
	}
	return render.New(log, RenderSettings(th)).Render(batches), count
}

// RenderSettings extracts renderer settings from the theme.
func RenderSettings(th *theme.Theme) render.Settings {
	screens := make([]render.Screen, 0, len(th.Screens))
	for _, s := range th.Screens {
		screens = append(screens, render.Screen{Name: s.Name, Query: s.Query()})
	}
	return render.Settings{
		Prefix:    th.Prefix,
		Separator: th.Separator,
		Important: th.Important,
		Screens:   screens,
	}
}

func outputName(path string) string {
	if len(path) == 0 {
		return "STDOUT"
	}
	return path
}

// writeOutput replaces destination atomically, so nobody watching output
// could see partially written stylesheet.
func writeOutput(path string, data []byte, overwrite bool, stdout io.Writer) error {
	if len(path) == 0 {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("unable to write stylesheet: %w", err)
		}
		return nil
	}

	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("output file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("unable to replace output file: %w", err)
	}
	return nil
}
