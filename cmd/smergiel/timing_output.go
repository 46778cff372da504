package main

import (
	"fmt"
	"io"
	"time"

	"smergiel/internal/buildpipeline"
)

var stageVerbs = map[buildpipeline.Stage]string{
	buildpipeline.StageParse:   "parsed",
	buildpipeline.StageEmit:    "emitted",
	buildpipeline.StageWrite:   "written",
	buildpipeline.StageCompile: "compiled",
	buildpipeline.StagePackage: "packaged",
	buildpipeline.StageRun:     "ran",
}

// printStageTimings prints one line per recorded stage in pipeline order.
func printStageTimings(out io.Writer, timings buildpipeline.Timings) error {
	if out == nil {
		return nil
	}
	for _, stage := range buildpipeline.Stages {
		if !timings.Has(stage) {
			continue
		}
		if _, err := fmt.Fprintf(out, "%s %.1f ms\n", stageVerbs[stage], toMillis(timings.Duration(stage))); err != nil {
			return err
		}
	}
	return nil
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
