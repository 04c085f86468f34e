package converter

import (
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Warning type constants
const (
	WarningMissingField    = "missing_field"
	WarningUnexpectedShape = "unexpected_shape"
	WarningOther           = "other"
)

const maxExamples = 3

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects skipped records and outputs a consolidated summary
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example mark name
func (w *WarningAggregator) Add(warningType, example string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, maxExamples),
		}
	}

	info := w.warnings[warningType]
	info.count++

	if len(info.examples) < maxExamples {
		info.examples = append(info.examples, example)
	}
}

// AddError classifies a mapping error and records it
func (w *WarningAggregator) AddError(err *RecordMapError) {
	w.Add(warningTypeOf(err), err.Name)
}

// Count returns the number of occurrences recorded for warningType
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll outputs one summary line per warning type, in a stable order
func (w *WarningAggregator) LogAll(log zerolog.Logger, inputPath string) {
	if len(w.warnings) == 0 {
		return
	}

	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		info := w.warnings[t]
		log.Warn().Msgf("Input %s has %d marks with %s (skipped). Examples: %s",
			inputPath, info.count, describeWarning(t), strings.Join(info.examples, ", "))
	}
}

func warningTypeOf(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return WarningMissingField
	case errors.Is(err, ErrUnexpectedShape):
		return WarningUnexpectedShape
	default:
		return WarningOther
	}
}

func describeWarning(warningType string) string {
	switch warningType {
	case WarningMissingField:
		return "missing required fields"
	case WarningUnexpectedShape:
		return "unexpected value types"
	default:
		return "unknown issues"
	}
}
