package lrs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/xapi"
)

// FileFetcher serves statements from a StatementResult dump, e.g. the saved
// body of an unfiltered GET /statements.
type FileFetcher struct {
	statements []xapi.Statement
}

var _ Fetcher = (*FileFetcher)(nil)

// NewFileFetcher loads the dump at path.
func NewFileFetcher(path string) (*FileFetcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement dump: %w", err)
	}
	var result xapi.StatementResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode statement dump %s: %w", path, err)
	}
	return &FileFetcher{statements: result.Statements}, nil
}

// Statements returns the dump's statements whose actor mbox matches the
// agent's, ignoring case, in file order. A non-positive limit means no limit.
func (f *FileFetcher) Statements(ctx context.Context, agent xapi.Agent, limit int) ([]xapi.Statement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []xapi.Statement
	for _, st := range f.statements {
		if st.Actor == nil || !strings.EqualFold(st.Actor.Mbox, agent.Mbox) {
			continue
		}
		out = append(out, st)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
