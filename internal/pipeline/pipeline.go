// Package pipeline wires the document source, the question synthesis
// core and the renderers into one generation run.
package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/553059210/Exam-gen/internal/analyze"
	"github.com/553059210/Exam-gen/internal/cache"
	"github.com/553059210/Exam-gen/internal/exam"
	"github.com/553059210/Exam-gen/internal/llm"
	"github.com/553059210/Exam-gen/internal/model"
	"github.com/553059210/Exam-gen/internal/render"
	"github.com/553059210/Exam-gen/internal/source"
	"github.com/553059210/Exam-gen/internal/synth"
)

// Pipeline orchestrates one exam generation run
type Pipeline struct {
	loader    *source.Loader
	assembler *exam.Assembler
	latex     *render.LaTeXRenderer
	jsonOut   *render.JSONRenderer
	config    *model.Config
}

// NewPipeline builds the pipeline from configuration. The keyword
// extractor variant is chosen here, once, per the analysis config; an
// unusable LLM extractor falls back to the heuristic with a warning
// rather than failing the run.
func NewPipeline(cfg *model.Config, verbose bool) *Pipeline {
	var extractor analyze.KeywordExtractor = analyze.NewHeuristicExtractor()
	if cfg.Analysis.Extractor == "openai" {
		e, err := llm.NewExtractor(cfg.LLM)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM extractor unavailable, using heuristic: %v\n", err)
		} else {
			extractor = e
		}
	}

	memo := cache.NewMemoryCache(10*time.Minute, 30*time.Minute)
	analyzer := analyze.NewAnalyzer(extractor, memo)

	return &Pipeline{
		loader:    source.NewLoader(cfg.Concurrency.ParseWorkers, verbose),
		assembler: exam.NewAssembler(synth.NewSynthesizer(analyzer)),
		latex:     render.NewLaTeXRenderer(),
		jsonOut:   render.NewJSONRenderer(),
		config:    cfg,
	}
}

// GenerateResult summarizes one completed run
type GenerateResult struct {
	Exam         *model.Exam
	ArticleCount int
	UsedSamples  bool
	ExamPath     string
	AnswersPath  string
	JSONPath     string
}

// Generate loads articles, assembles the exam and writes the output
// documents. The random source is created once from the configured seed
// and threaded through the whole assembly.
func (p *Pipeline) Generate(ctx context.Context, outPrefix string, writeJSON bool) (*GenerateResult, error) {
	articles := p.loader.LoadDirectory(ctx, p.config.InputDir)

	usedSamples := false
	if len(articles) == 0 {
		// Keep dry runs working when the input directory is empty.
		fmt.Fprintf(os.Stderr, "No articles found in %s, using built-in sample articles\n", p.config.InputDir)
		articles = source.SampleArticles()
		usedSamples = true
	}

	rng := rand.New(rand.NewSource(p.config.Seed))
	assembled := p.assembler.Assemble(articles, p.config, rng)

	examPath, answersPath, err := p.latex.WriteFiles(assembled, p.config, outPrefix)
	if err != nil {
		return nil, fmt.Errorf("render latex: %w", err)
	}

	jsonPath := ""
	if writeJSON {
		jsonPath = filepath.Join(p.config.OutputDir, outPrefix+".json")
		if err := p.jsonOut.Write(assembled, jsonPath); err != nil {
			return nil, fmt.Errorf("render json: %w", err)
		}
	}

	return &GenerateResult{
		Exam:         assembled,
		ArticleCount: len(articles),
		UsedSamples:  usedSamples,
		ExamPath:     examPath,
		AnswersPath:  answersPath,
		JSONPath:     jsonPath,
	}, nil
}
