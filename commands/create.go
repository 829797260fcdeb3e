package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"twee/state"
)

const storySkeleton = `:: StoryTitle
%s

:: StoryData
{
	"ifid": "%s",
	"format": "%s",
	"format-version": "%s",
	"start": "Start"
}

:: Start
Your story begins here.
`

// Create writes a new story skeleton with a freshly generated IFID. The file
// name is derived from the title.
func Create(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no story title specified")
	}
	title := cmd.Args().Get(0)

	dir := cmd.Args().Get(1)
	if len(dir) == 0 {
		dir = "."
	}

	name := slug.Make(title)
	if len(name) == 0 {
		return fmt.Errorf("unable to derive file name from title '%s'", title)
	}
	path := filepath.Join(dir, name+".twee")
	if _, err := os.Stat(path); err == nil && !cmd.Bool("overwrite") {
		return fmt.Errorf("destination '%s' already exists", path)
	}

	ifid := strings.ToUpper(uuid.NewString())
	body := fmt.Sprintf(storySkeleton, title, ifid, cmd.String("format"), cmd.String("format-version"))

	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("unable to write '%s': %w", path, err)
	}
	env.Log.Info("Story created", zap.String("file", path), zap.String("ifid", ifid))
	return nil
}
