package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	cli "github.com/urfave/cli/v3"
)

// Links prints every link in the story, grouped by source passage.
func Links(ctx context.Context, cmd *cli.Command) error {
	_, story, err := loadStory(ctx, cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	for _, name := range story.Names() {
		links := story.Passage(name).Links()
		if len(links) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\n", name)
		for _, l := range links {
			if l.Text == l.Target {
				fmt.Fprintf(w, "\t-> %s\n", l.Target)
				continue
			}
			fmt.Fprintf(w, "\t-> %s\t(%q)\n", l.Target, l.Text)
		}
	}
	return nil
}
