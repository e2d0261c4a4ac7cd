package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"bgc/gradient"
	"bgc/state"
	"bgc/theme"
)

// Inspect is the action of inspect command, it prints generated utilities
// without rendering them.
func Inspect(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no theme file has been specified")
	}
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	return inspect(src, cmd.Bool("sort"), env, os.Stdout)
}

func inspect(src string, sorted bool, env *state.LocalEnv, out io.Writer) error {
	th, err := theme.Load(src, env.Log)
	if err != nil {
		return err
	}

	dump := gradient.Dump(env.Generator().Generate(th), sorted)
	env.Rpt.StoreData("inspect.txt", []byte(dump))

	if _, err := io.WriteString(out, dump); err != nil {
		return fmt.Errorf("unable to write inspection results: %w", err)
	}
	return nil
}
