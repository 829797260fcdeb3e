package commands

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"

	"twee/state"
	"twee/watch"
)

// Watch re-parses the given file or directory on every change until
// interrupted.
func Watch(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	path := cmd.Args().Get(0)
	if len(path) == 0 {
		path = "."
	}

	w, err := watch.New(path, env.Cfg.Document.Extensions, env.Log)
	if err != nil {
		return fmt.Errorf("unable to watch '%s': %w", path, err)
	}

	// the watcher logs every outcome, the results channel is for library
	// consumers and may be left unread
	return w.Run(ctx)
}
