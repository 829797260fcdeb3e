package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"twee/state"
)

// Info prints a short summary of a parsed story.
func Info(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	path, story, err := loadStory(ctx, cmd)
	if err != nil {
		return err
	}
	env.Log.Debug("Story parsed", zap.String("file", path), zap.Int("passages", story.Len()))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	title, ok := story.Title()
	if !ok {
		title = "(untitled)"
	}
	fmt.Fprintf(w, "Title:\t%s\n", title)
	if data := story.Data(); data != nil {
		if len(data.IFID) > 0 {
			fmt.Fprintf(w, "IFID:\t%s\n", data.IFID)
		}
		if len(data.Format) > 0 {
			format := data.Format
			if len(data.FormatVersion) > 0 {
				format += " " + data.FormatVersion
			}
			fmt.Fprintf(w, "Format:\t%s\n", format)
		}
	}
	if name, ok := story.StartName(); ok {
		status := ""
		if story.Start() == nil {
			status = " (missing!)"
		}
		fmt.Fprintf(w, "Start:\t%s%s\n", name, status)
	}
	fmt.Fprintf(w, "Passages:\t%d\n", story.Len())

	if cmd.Bool("passages") {
		for _, name := range story.Names() {
			p := story.Passage(name)
			line := name
			if tags := p.Tags(); len(tags) > 0 {
				line += " [" + strings.Join(tags, " ") + "]"
			}
			fmt.Fprintf(w, "\t%s\n", line)
		}
	}
	return nil
}
