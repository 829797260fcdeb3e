package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"twee/state"
)

// Check validates story structure beyond the grammar: StoryData presence,
// start passage resolution and dangling link targets.
func Check(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	path, story, err := loadStory(ctx, cmd)
	if err != nil {
		return err
	}

	var problems int
	report := func(msg string, fields ...zap.Field) {
		problems++
		env.Log.Warn(msg, fields...)
	}

	if _, ok := story.Title(); !ok {
		report("Story has no StoryTitle passage")
	}
	data := story.Data()
	switch {
	case data == nil:
		report("Story has no StoryData passage")
	case len(data.IFID) == 0:
		report("StoryData has no ifid")
	}

	if name, ok := story.StartName(); !ok {
		report("StoryData declares no start passage")
	} else if story.Start() == nil {
		report("Start passage does not exist", zap.String("start", name))
	}

	// dedupe dangling targets across passages, sources kept per target
	dangling := make(map[string][]string)
	for _, name := range story.Names() {
		for _, l := range story.Passage(name).Links() {
			if story.Passage(l.Target) == nil {
				dangling[l.Target] = append(dangling[l.Target], name)
			}
		}
	}
	targets := make([]string, 0, len(dangling))
	for t := range dangling {
		targets = append(targets, t)
	}
	sort.Sort(natural.StringSlice(targets))
	for _, t := range targets {
		report("Link target does not exist", zap.String("target", t), zap.Strings("linked from", dangling[t]))
	}

	if problems > 0 {
		return fmt.Errorf("'%s' has %d problem(s)", path, problems)
	}
	env.Log.Info("Story is well formed", zap.String("file", path), zap.Int("passages", story.Len()))
	return nil
}
