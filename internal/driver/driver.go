// Package driver orchestrates decode, validate, render and diff for the
// CLI: file loading, finding bags, and the optional canonical-text cache.
package driver

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"otlview/internal/diag"
	"otlview/internal/otl"
	"otlview/internal/otldiff"
	"otlview/internal/outfmt"
	"otlview/internal/source"
	"otlview/internal/validate"
)

// Options carries the per-invocation knobs shared by all commands.
type Options struct {
	Encoding    outfmt.Encoding
	MaxFindings int
	// Cache enables the canonical-text disk cache (see dcache.go).
	Cache *DiskCache
}

// Result is one successful decode.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Doc     *otl.Document
	// Bag holds decode-time findings. Validate appends to it.
	Bag *diag.Bag
}

// Decode loads path ("-" reads standard input) and decodes it. Decode
// failures are fatal for the invocation and carry the byte offset.
func Decode(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()

	var fileID source.FileID
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		fileID = fs.AddVirtual("<stdin>", content)
	} else {
		var err error
		fileID, err = fs.Load(path)
		if err != nil {
			return nil, err
		}
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxFindings(opts))
	doc, err := otl.Decode(file, otl.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}

	return &Result{FileSet: fs, File: file, Doc: doc, Bag: bag}, nil
}

// Validate runs the structural validator and merges its findings into the
// result's bag, sorted. Always succeeds.
func Validate(res *Result) {
	validate.Document(res.Doc, diag.BagReporter{Bag: res.Bag})
	res.Bag.Sort()
	res.Bag.Dedup()
}

// Canonical renders the canonical text for a result, consulting the disk
// cache when one is configured. The cache key covers the input bytes and
// the render options, so a hit is byte-identical to a fresh render.
func Canonical(res *Result, opts Options) (string, error) {
	canonOpts := outfmt.CanonicalOpts{Encoding: opts.Encoding}

	if opts.Cache != nil {
		key := cacheKey(res.File.Hash, canonOpts)
		var payload CanonPayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok && payload.Schema == canonCacheSchemaVersion {
			return payload.Canonical, nil
		}
		text := outfmt.Canonical(res.Doc, canonOpts)
		payload = CanonPayload{
			Schema:    canonCacheSchemaVersion,
			Encoding:  uint8(canonOpts.Encoding),
			Headlines: len(res.Doc.Headlines),
			Canonical: text,
		}
		// Ошибки записи кэша не фатальны.
		_ = opts.Cache.Put(key, &payload)
		return text, nil
	}

	return outfmt.Canonical(res.Doc, canonOpts), nil
}

// DiffPaths decodes both inputs and diffs them. The two decode passes share
// no state, so they run concurrently (documents are immutable once built).
func DiffPaths(prevPath, currPath string, opts Options, diffOpts otldiff.Options) (*otldiff.Report, *Result, *Result, error) {
	var prev, curr *Result

	var g errgroup.Group
	g.Go(func() error {
		res, err := Decode(prevPath, opts)
		prev = res
		return err
	})
	g.Go(func() error {
		res, err := Decode(currPath, opts)
		curr = res
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	diffOpts.Encoding = opts.Encoding
	report := otldiff.Documents(prev.Doc, curr.Doc, diffOpts)
	return report, prev, curr, nil
}

func maxFindings(opts Options) int {
	if opts.MaxFindings > 0 {
		return opts.MaxFindings
	}
	return 100
}
