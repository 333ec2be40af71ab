package parser

import (
	"regexp"
	"strconv"

	"github.com/go-mcfd/mcfd/internal/model"
)

var tickCountPattern = regexp.MustCompile(`^([0-9]+)t$`)

// parseSchedule parses "schedule function <ns>:<path> <N>t[ append|replace]"
// and "schedule clear <ns>:<path>" (tokens already split, tokens[0] ==
// "schedule").
func parseSchedule(tokens []string) (*model.ScheduleCall, bool) {
	if len(tokens) < 2 {
		return nil, false
	}

	if tokens[1] == "clear" {
		if len(tokens) != 3 || !isResourceName(tokens[2]) {
			return nil, false
		}
		return &model.ScheduleCall{Kind: model.ScheduleClear, Callee: tokens[2]}, true
	}

	if tokens[1] != "function" {
		return nil, false
	}
	if len(tokens) < 4 || len(tokens) > 5 {
		return nil, false
	}
	if !isResourceName(tokens[2]) {
		return nil, false
	}
	m := tickCountPattern.FindStringSubmatch(tokens[3])
	if m == nil {
		return nil, false
	}
	ticks, err := strconv.Atoi(m[1])
	if err != nil || ticks < 0 {
		return nil, false
	}

	kind := model.ScheduleAppend
	if len(tokens) == 5 {
		switch tokens[4] {
		case "append":
			kind = model.ScheduleAppend
		case "replace":
			kind = model.ScheduleReplace
		default:
			return nil, false
		}
	}

	return &model.ScheduleCall{Kind: kind, Callee: tokens[2], Ticks: ticks}, true
}
