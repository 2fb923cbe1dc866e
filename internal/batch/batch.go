// Package batch drives one translation run: walk, then for each file in
// order, parse, resolve, emit, and write, recording the outcome to the
// manifest. Adapted from core.FileProcessor's per-file pipeline shape,
// but run strictly in series — spec.md §5 forbids the teacher's
// goroutine worker pool here, since a later file's resolver must never
// observe another file's symbol table.
package batch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/oxhq/sol2ink/internal/diagnostics"
	"github.com/oxhq/sol2ink/internal/emit"
	"github.com/oxhq/sol2ink/internal/ir"
	"github.com/oxhq/sol2ink/internal/manifest"
	"github.com/oxhq/sol2ink/internal/resolver"
	"github.com/oxhq/sol2ink/internal/solidity"
	"github.com/oxhq/sol2ink/internal/walk"
	"github.com/oxhq/sol2ink/internal/write"
)

// Options configures one run.
type Options struct {
	Root     string
	OutDir   string
	DryRun   bool
	Include  []string
	Exclude  []string
	Reporter *diagnostics.Reporter
	Ledger   *manifest.Ledger
}

// Summary is the outcome of one run.
type Summary struct {
	FilesSeen   int
	FilesOK     int
	FilesFailed int
}

// Run walks Options.Root, translating every matched .sol file in
// lexicographic order and writing its artifacts under Options.OutDir.
func Run(ctx context.Context, opts Options) (Summary, error) {
	files, err := walk.Walk(walk.Scope{Root: opts.Root, Include: opts.Include, Exclude: opts.Exclude})
	if err != nil {
		return Summary{}, fmt.Errorf("walking %s: %w", opts.Root, err)
	}

	batchID, err := opts.Ledger.StartBatch(ctx, opts.Root)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	writer := write.New(write.DefaultConfig())

	for _, f := range files {
		sum.FilesSeen++
		artifacts, err := translateOne(f.Path, opts, writer)
		if err != nil {
			sum.FilesFailed++
			opts.Reporter.Failure(f.Path, err)
			opts.Ledger.RecordFailure(ctx, manifest.Failure{
				BatchID:    batchID,
				SourceFile: f.Path,
				ErrorKind:  errorKind(err),
				Message:    err.Error(),
			})
			continue
		}
		sum.FilesOK++
		opts.Reporter.Success(f.Path, len(artifacts))
		for _, a := range artifacts {
			opts.Ledger.RecordArtifact(ctx, manifest.Artifact{
				BatchID:    batchID,
				SourceFile: f.Path,
				Contract:   a.contract,
				Kind:       a.kind,
				OutputPath: a.path,
				Digest:     a.digest,
			})
		}
	}

	if err := opts.Ledger.FinishBatch(ctx, batchID, sum.FilesSeen, sum.FilesOK, sum.FilesFailed); err != nil {
		return sum, err
	}
	return sum, nil
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

type writtenArtifact struct {
	contract string
	kind     string
	path     string
	digest   string
}

func translateOne(path string, opts Options, w *write.Writer) ([]writtenArtifact, error) {
	source, err := readFile(path)
	if err != nil {
		return nil, ir.WrapError(ir.FileError, path, "reading source file", err)
	}

	unit, err := solidity.Parse(path, source)
	if err != nil {
		return nil, err
	}

	out, err := resolver.Resolve(path, unit)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var written []writtenArtifact

	for _, c := range out.Contracts {
		for _, a := range emit.Contract(path, c) {
			wr, err := persist(w, opts, base, c.Name, a.Name, a.Content, opts.DryRun)
			if err != nil {
				return nil, err
			}
			written = append(written, wr)
		}
	}
	for _, l := range out.Libraries {
		a := emit.Library(path, l)
		wr, err := persist(w, opts, base, l.Name, a.Name, a.Content, opts.DryRun)
		if err != nil {
			return nil, err
		}
		written = append(written, wr)
	}
	for _, i := range out.Interfaces {
		a := emit.Interface(path, i)
		wr, err := persist(w, opts, base, i.Name, a.Name, a.Content, opts.DryRun)
		if err != nil {
			return nil, err
		}
		written = append(written, wr)
	}

	return written, nil
}

func persist(w *write.Writer, opts Options, baseName, contract, kind, content string, dryRun bool) (writtenArtifact, error) {
	outPath := filepath.Join(opts.OutDir, baseName, kind+".rs")
	sum := sha256.Sum256([]byte(content))
	digest := hex.EncodeToString(sum[:])

	if dryRun {
		if opts.Reporter != nil {
			if diff := diffAgainstExisting(outPath, content); diff != "" {
				opts.Reporter.Diff(outPath, diff)
			}
		}
	} else {
		if err := w.WriteFile(outPath, content); err != nil {
			return writtenArtifact{}, ir.WrapError(ir.FileError, outPath, "writing output file", err)
		}
	}
	return writtenArtifact{contract: contract, kind: kind, path: outPath, digest: digest}, nil
}

// diffAgainstExisting renders a unified diff between outPath's current
// contents (if any) and the newly emitted content, for --dry-run preview.
// A nonexistent outPath is treated as an empty prior file.
func diffAgainstExisting(outPath, content string) string {
	prior, err := os.ReadFile(outPath)
	if err != nil {
		prior = nil
	}
	if string(prior) == content {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(prior)),
		B:        difflib.SplitLines(content),
		FromFile: outPath + " (existing)",
		ToFile:   outPath + " (new)",
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return diff
}

func errorKind(err error) string {
	var te *ir.TranslateError
	if ok := asTranslateError(err, &te); ok {
		return te.Kind.String()
	}
	return "unknown"
}

func asTranslateError(err error, target **ir.TranslateError) bool {
	for err != nil {
		if te, ok := err.(*ir.TranslateError); ok {
			*target = te
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
