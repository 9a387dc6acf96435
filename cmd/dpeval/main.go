// Package main contains a command to rank the path candidates of a scenario.
package main

import (
	"context"
	"sort"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"go.viam.com/utils"

	"github.com/roadgraph/dppath/scenario"
	"github.com/roadgraph/dppath/trajcost"
)

var logger = golog.NewDevelopmentLogger("dpeval")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	ScenarioFile string `flag:"0,required,usage=scenario JSON file"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}
	return rankScenario(ctx, argsParsed.ScenarioFile, logger)
}

func rankScenario(ctx context.Context, path string, logger golog.Logger) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	oracle, candidates, err := sc.Build(logger)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return errors.New("scenario has no candidates to rank")
	}

	costs, err := trajcost.EvaluateCandidates(ctx, oracle, candidates)
	if err != nil {
		return err
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return costs[order[a]].Compare(costs[order[b]]) < 0
	})

	for rank, idx := range order {
		cost := costs[idx]
		logger.Infow("candidate",
			"rank", rank+1,
			"end_l", sc.Candidates[idx].EndL,
			"segment_start", candidates[idx].StartS,
			"segment_end", candidates[idx].EndS,
			"smoothness", cost.Smoothness,
			"safety", cost.Safety,
			"out_of_boundary", cost.OutOfBoundary,
			"has_collision", cost.HasCollision,
		)
	}
	best := order[0]
	logger.Infof("best candidate ends at l=%.2f with total cost %.4f", sc.Candidates[best].EndL, costs[best].Total())
	return nil
}
