package catalog

import (
	"context"

	"github.com/KirkDiggler/rpg-catalog/internal/errors"
)

// CopyInput defines the input for Copy
type CopyInput struct {
	From Repository
	To   Repository
	// Prefix limits the copy to paths under it
	Prefix string
}

// CopyOutput lists the copied paths
type CopyOutput struct {
	Paths []string
}

// Copy writes every document under input.Prefix from one repository into
// another. It stops at the first failure.
func Copy(ctx context.Context, input CopyInput) (*CopyOutput, error) {
	if input.From == nil || input.To == nil {
		return nil, errors.InvalidArgument("both repositories are required")
	}

	list, err := input.From.List(ctx, ListInput{Prefix: input.Prefix})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list source documents")
	}

	out := &CopyOutput{Paths: make([]string, 0, len(list.Paths))}
	for _, p := range list.Paths {
		if err := ctx.Err(); err != nil {
			return out, errors.WrapWithCode(err, errors.CodeCanceled, "copy interrupted")
		}

		doc, err := input.From.Get(ctx, GetInput{Path: p})
		if err != nil {
			return out, errors.Wrapf(err, "failed to read %s", p)
		}

		if _, err := input.To.Put(ctx, PutInput{Path: doc.Path, Data: doc.Data, Format: doc.Format}); err != nil {
			return out, errors.Wrapf(err, "failed to write %s", p)
		}
		out.Paths = append(out.Paths, doc.Path)
	}

	return out, nil
}
