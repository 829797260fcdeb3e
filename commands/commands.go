// Package commands implements the actions behind the cli subcommands.
package commands

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"twee/state"
	"twee/twee"
)

func loadStory(ctx context.Context, cmd *cli.Command) (string, *twee.Story, error) {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return "", nil, fmt.Errorf("no source file specified")
	}
	path := cmd.Args().Get(0)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, extra arguments ignored", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return path, nil, fmt.Errorf("unable to read source file '%s': %w", path, err)
	}
	story, err := twee.Parse(string(data), env.Log)
	if err != nil {
		return path, nil, fmt.Errorf("unable to parse '%s': %w", path, err)
	}
	return path, story, nil
}
