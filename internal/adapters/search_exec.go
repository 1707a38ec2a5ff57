package adapters

import (
	"context"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"atest-finder/internal/ports"
	"atest-finder/internal/shared"
)

// FindSearch shells out to find(1). Find, unlike grep, exits zero when
// nothing matches, so an empty result is a plain success.
type FindSearch struct{}

func NewFindSearch() FindSearch {
	return FindSearch{}
}

func (FindSearch) Search(ctx context.Context, req ports.SearchRequest) ([]string, error) {
	if err := validateSearchRequest(req); err != nil {
		return nil, err
	}

	args := []string{req.Root, "-type", "d", "-name", ".*", "-prune", "-o", "-type", "f"}
	if req.BaseName != "" {
		args = append(args, "-name", req.BaseName)
	} else {
		args = append(args, "-wholename", "*/"+req.PathSuffix)
	}
	args = append(args, "-print")

	log.Debug().Strs("args", args).Msg("executing find")
	cmd := exec.CommandContext(ctx, "find", args...)
	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, mapSearchFailure(ctxErr)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("find command failed").
			WithCause(shared.CommandError(out, err))
	}

	var matches []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			matches = append(matches, line)
		}
	}
	return matches, nil
}

var _ ports.SearchPort = FindSearch{}
