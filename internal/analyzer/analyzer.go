// Package analyzer orchestrates the analysis pipeline: raw text in, enriched
// analysis result out. It holds no per-analysis state; two concurrent
// analyses share nothing but the read-only role catalog.
package analyzer

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/suggesting"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// compareConcurrency bounds how many role analyses run at once in
// CompareRoles. Each analysis is CPU-only, so a small bound is plenty.
const compareConcurrency = 4

// Analyzer wires the pipeline components around a loaded role catalog.
type Analyzer struct {
	catalog *catalog.Catalog
}

// New returns an Analyzer using the given role catalog.
func New(cat *catalog.Catalog) *Analyzer {
	return &Analyzer{catalog: cat}
}

// Catalog exposes the underlying role catalog for listings.
func (a *Analyzer) Catalog() *catalog.Catalog {
	return a.catalog
}

// BuildSignal derives the full resume signal from raw extracted text:
// normalization, section detection, skill extraction, readability, basic
// statistics, and contact info. The signal is immutable once built.
func BuildSignal(rawText string) (*types.ResumeSignal, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, &matching.InvalidInputError{Field: "resume_text", Message: "resume text is empty"}
	}

	normalized := parsing.Normalize(rawText)

	return &types.ResumeSignal{
		RawText:          rawText,
		NormalizedText:   normalized,
		Sections:         parsing.DetectSections(rawText),
		ExtractedSkills:  skills.Extract(normalized),
		ReadabilityScore: parsing.ReadabilityScore(rawText),
		Statistics:       parsing.ComputeStatistics(rawText),
		Contact:          parsing.ExtractContact(rawText),
	}, nil
}

// Run matches a signal against a job model and attaches suggestions.
func (a *Analyzer) Run(signal *types.ResumeSignal, job *types.JobRequirements) (*types.AnalysisResult, error) {
	result, err := matching.Analyze(signal, job)
	if err != nil {
		return nil, err
	}
	result.Suggestions = suggesting.Generate(result, job)
	return result, nil
}

// AnalyzeAgainstRole analyzes resume text against a predefined catalog role.
func (a *Analyzer) AnalyzeAgainstRole(resumeText, roleKey string) (*types.AnalysisResult, *types.JobRequirements, error) {
	job, err := a.catalog.Role(roleKey)
	if err != nil {
		return nil, nil, err
	}
	return a.analyze(resumeText, job)
}

// AnalyzeAgainstDescription analyzes resume text against a free-text job
// description.
func (a *Analyzer) AnalyzeAgainstDescription(resumeText, description string) (*types.AnalysisResult, *types.JobRequirements, error) {
	job, err := a.catalog.AnalyzeDescription(description)
	if err != nil {
		return nil, nil, err
	}
	return a.analyze(resumeText, job)
}

func (a *Analyzer) analyze(resumeText string, job *types.JobRequirements) (*types.AnalysisResult, *types.JobRequirements, error) {
	signal, err := BuildSignal(resumeText)
	if err != nil {
		return nil, nil, err
	}
	result, err := a.Run(signal, job)
	if err != nil {
		return nil, nil, err
	}
	return result, job, nil
}

// CompareRoles analyzes one resume against every catalog role and returns
// the comparisons sorted by overall score, best first. The signal is built
// once and shared read-only across the worker goroutines.
func (a *Analyzer) CompareRoles(ctx context.Context, resumeText string) ([]types.RoleComparison, error) {
	signal, err := BuildSignal(resumeText)
	if err != nil {
		return nil, err
	}

	keys := a.catalog.Keys()
	comparisons := make([]types.RoleComparison, len(keys))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(compareConcurrency)
	for i, key := range keys {
		g.Go(func() error {
			job, err := a.catalog.Role(key)
			if err != nil {
				return err
			}
			result, err := a.Run(signal, job)
			if err != nil {
				return err
			}
			comparisons[i] = types.RoleComparison{RoleKey: key, Title: job.Title, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(comparisons, func(i, j int) bool {
		return comparisons[i].Result.OverallScore > comparisons[j].Result.OverallScore
	})
	return comparisons, nil
}
