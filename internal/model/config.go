package model

// Config holds the complete generator configuration.
//
// Hierarchy (highest to lowest priority): CLI flags, environment
// variables (EXAMGEN_*), config file, DefaultConfig. Every lookup has a
// default; a missing key never fails.
type Config struct {
	ExamTitle       string `mapstructure:"exam_title" yaml:"exam_title"`
	ExamTimeMinutes int    `mapstructure:"exam_time_minutes" yaml:"exam_time_minutes"`
	InputDir        string `mapstructure:"input_dir" yaml:"input_dir"`
	OutputDir       string `mapstructure:"output_dir" yaml:"output_dir"`
	Seed            int64  `mapstructure:"seed" yaml:"seed"`

	Counts   CountsConfig   `mapstructure:"counts" yaml:"counts"`
	Points   PointsConfig   `mapstructure:"points" yaml:"points"`
	Weights  WeightsConfig  `mapstructure:"weights" yaml:"weights"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	LLM      LLMConfig      `mapstructure:"llm" yaml:"llm"`

	Concurrency ConcurrencyConfig `mapstructure:"concurrency" yaml:"concurrency"`
}

// CountsConfig sets the target question count per type
type CountsConfig struct {
	TrueFalse      int `mapstructure:"true_false" yaml:"true_false"`
	SingleChoice   int `mapstructure:"single_choice" yaml:"single_choice"`
	MultipleChoice int `mapstructure:"multiple_choice" yaml:"multiple_choice"`
	FillBlank      int `mapstructure:"fill_blank" yaml:"fill_blank"`
	ShortAnswer    int `mapstructure:"short_answer" yaml:"short_answer"`
}

// PointsConfig sets the per-question score per type
type PointsConfig struct {
	TrueFalse      int `mapstructure:"true_false" yaml:"true_false"`
	SingleChoice   int `mapstructure:"single_choice" yaml:"single_choice"`
	MultipleChoice int `mapstructure:"multiple_choice" yaml:"multiple_choice"`
	FillBlank      int `mapstructure:"fill_blank" yaml:"fill_blank"`
	ShortAnswer    int `mapstructure:"short_answer" yaml:"short_answer"`
}

// WeightsConfig biases article sampling toward designated important articles
type WeightsConfig struct {
	ImportantArticles []string `mapstructure:"important_articles" yaml:"important_articles"`
	ImportantWeight   float64  `mapstructure:"important_weight" yaml:"important_weight"`
	Default           float64  `mapstructure:"default" yaml:"default"`
}

// ImportantSet returns the important article numbers as a lookup set
func (w WeightsConfig) ImportantSet() map[string]bool {
	set := make(map[string]bool, len(w.ImportantArticles))
	for _, no := range w.ImportantArticles {
		set[no] = true
	}
	return set
}

// AnalysisConfig selects the keyword extractor variant.
// "heuristic" is the deterministic default; "openai" enables the
// LLM-backed extractor and requires llm settings.
type AnalysisConfig struct {
	Extractor string `mapstructure:"extractor" yaml:"extractor"`
}

// LLMConfig configures the optional LLM keyword extractor
type LLMConfig struct {
	Model             string  `mapstructure:"model" yaml:"model"`
	APIKey            string  `mapstructure:"api_key" yaml:"api_key"`
	BaseURL           string  `mapstructure:"base_url" yaml:"base_url"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `mapstructure:"burst" yaml:"burst"`
}

// ConcurrencyConfig bounds the document source worker pool
type ConcurrencyConfig struct {
	ParseWorkers int `mapstructure:"parse_workers" yaml:"parse_workers"`
}

// TotalPoints returns the full exam score implied by counts and points
func (c *Config) TotalPoints() int {
	return c.Points.TrueFalse*c.Counts.TrueFalse +
		c.Points.SingleChoice*c.Counts.SingleChoice +
		c.Points.MultipleChoice*c.Counts.MultipleChoice +
		c.Points.FillBlank*c.Counts.FillBlank +
		c.Points.ShortAnswer*c.Counts.ShortAnswer
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		ExamTitle:       "法律知识考试试卷",
		ExamTimeMinutes: 120,
		InputDir:        ".",
		OutputDir:       ".",
		Seed:            42,
		Counts: CountsConfig{
			TrueFalse:      10,
			SingleChoice:   10,
			MultipleChoice: 5,
			FillBlank:      5,
			ShortAnswer:    3,
		},
		Points: PointsConfig{
			TrueFalse:      2,
			SingleChoice:   2,
			MultipleChoice: 3,
			FillBlank:      3,
			ShortAnswer:    10,
		},
		Weights: WeightsConfig{
			ImportantArticles: nil,
			ImportantWeight:   3.0,
			Default:           1.0,
		},
		Analysis: AnalysisConfig{
			Extractor: "heuristic",
		},
		LLM: LLMConfig{
			Model:             "gpt-4o-mini",
			TimeoutSeconds:    30,
			RequestsPerSecond: 1.0,
			Burst:             2,
		},
		Concurrency: ConcurrencyConfig{
			ParseWorkers: 4,
		},
	}
}
