package oracle

import (
	"fmt"
	"strings"
)

const skeletonSystemPrompt = `You draft skeleton day plans: named time blocks with draft tasks.
Respond with a single JSON object, no prose, matching exactly:
{
  "date": "YYYY-MM-DD",
  "blocks": [
    {
      "name": "Morning Launch",
      "start_time": "HH:MM",
      "end_time": "HH:MM",
      "zone": "peak" | "maintenance" | "recovery",
      "tasks": [
        {
          "title": "...",
          "description": "...",
          "start_time": "HH:MM",
          "end_time": "HH:MM",
          "type": "optional category hint",
          "priority": 1
        }
      ]
    }
  ]
}
Blocks must be ordered and non-overlapping. Keep tasks inside their block's
time range. Use 24-hour times.`

func buildSkeletonPrompt(req SkeletonRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Draft a day plan for %s.\n", req.Date)
	fmt.Fprintf(&b, "User archetype: %s. Current mode: %s.\n", req.Archetype, req.Mode)
	if req.WakeTime != "" {
		fmt.Fprintf(&b, "The day starts at %s.\n", req.WakeTime)
	}
	if req.SleepTime != "" {
		fmt.Fprintf(&b, "The day ends at %s.\n", req.SleepTime)
	}
	b.WriteString("Include peak focus blocks, maintenance blocks, and a recovery block.")
	return b.String()
}
