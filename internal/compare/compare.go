// Package compare implements the core of the JSON comparison pipeline:
// order-insensitive structural equality, path flattening and per-field
// classification of differences.
package compare

import (
	"context"
	stderrors "errors"

	"golang.org/x/sync/errgroup"

	"github.com/mcncl/jsoncompare/internal/errors"
	"github.com/mcncl/jsoncompare/internal/models"
	"github.com/mcncl/jsoncompare/internal/parser"
)

// LoadPair parses both JSON files concurrently. Either failure aborts the
// load and is returned; no partial result is consumable. A cancelled
// context surfaces as an interrupted-typed error.
func LoadPair(ctx context.Context, path1, path2 string) (models.Document, models.Document, error) {
	var first, second models.Document

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		first, err = parser.ParseFile(path1)
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		second, err = parser.ParseFile(path2)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Document{}, models.Document{}, wrapInterrupted(err, "loading documents was cancelled")
	}
	return first, second, nil
}

// Equal reports whether the two documents are structurally equal, ignoring
// object field order. This boolean verdict is the ground truth for the exit
// status of a comparison.
func Equal(first, second models.Document) bool {
	return StructuralEqual(first.Root, second.Root)
}

// DetailedDiff flattens both documents concurrently and classifies every
// field path across the two flattened mappings.
//
// The classification compares rendered string values, not structures, so on
// edge cases such as differing numeric formatting the itemized report can
// disagree with the verdict of Equal. Callers wanting the structural answer
// must use Equal.
func DetailedDiff(ctx context.Context, first, second models.Document) (*Report, error) {
	var flatFirst, flatSecond models.FlattenedDocument

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		flatFirst, err = Flatten(first.Root)
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		flatSecond, err = Flatten(second.Root)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrapInterrupted(err, "flattening documents was cancelled")
	}

	return Classify(flatFirst, flatSecond, first.Name, second.Name), nil
}

func wrapInterrupted(err error, message string) error {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewInterruptedError(message, err)
	}
	return err
}
